// Package fixture builds randomized password-database trees for tests.
//
// A [Generator] walks down from a destination group, adding a random number
// of entries at each level and, with a probability that halves on every
// descent, a random number of child groups that are populated the same way.
// Names can carry a wifi-like tag ("wifi_", "[WPA2] ", ...) so the fixtures
// exercise credential-detection code paths.
//
// The generator depends only on the narrow [Database] interface, never on a
// concrete vault implementation.
package fixture
