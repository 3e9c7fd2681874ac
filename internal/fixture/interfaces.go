package fixture

import "github.com/MKhiriev/go-pass-fixtures/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/fixture_database_mock.go -package=mock

// Database is the subset of a password database the generator mutates.
// parent must already exist in the database.
type Database interface {
	AddEntry(parent models.Group, title, username, password string) (models.Entry, error)
	AddGroup(parent models.Group, name string) (models.Group, error)
}
