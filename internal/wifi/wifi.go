// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package wifi picks wireless-network credentials out of vault entries and
// turns them into the WIFI: payload phones understand when scanning a QR
// code.
package wifi

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/MKhiriev/go-pass-fixtures/models"
)

// Security types understood by the WIFI: payload.
const (
	WPA3 = "WPA3"
	WPA2 = "WPA2"
	WPA  = "WPA"
	WEP  = "WEP"
)

// markers are matched case-insensitively against titles and usernames.
var markers = []string{"wifi", "wi-fi", "wlan", "wireless", "wpa"}

// securityTags are checked in order, so "[wpa3]" is found before "[wpa]".
var securityTags = []struct {
	tag  string
	kind string
}{
	{"[wpa3]", WPA3},
	{"[wpa2]", WPA2},
	{"[wpa]", WPA},
	{"[wep]", WEP},
}

// IsCredential reports whether e looks like a wireless-network credential.
func IsCredential(e models.Entry) bool {
	for _, field := range []string{e.Title, e.Username} {
		lower := strings.ToLower(field)
		for _, m := range markers {
			if strings.Contains(lower, m) {
				return true
			}
		}
	}
	return false
}

// SecurityType derives the network security from a bracketed tag in title.
// Untagged titles default to WPA2.
func SecurityType(title string) string {
	lower := strings.ToLower(title)
	for _, st := range securityTags {
		if strings.Contains(lower, st.tag) {
			return st.kind
		}
	}
	return WPA2
}

// Payload builds the WIFI: string for e. The username is the network name.
func Payload(e models.Entry) string {
	return fmt.Sprintf("WIFI:S:%s;T:%s;P:%s;;", e.Username, SecurityType(e.Title), e.Password)
}

// Filter returns the credentials among entries whose title or username
// contains search. An empty search keeps every credential. Order is
// preserved and each entry appears at most once.
func Filter(entries []models.Entry, search string) []models.Entry {
	var out []models.Entry
	for _, e := range entries {
		if !IsCredential(e) {
			continue
		}
		if strings.Contains(e.Title, search) || strings.Contains(e.Username, search) {
			out = append(out, e)
		}
	}
	return out
}

// QRCode renders payload as a block-character QR code for a terminal.
func QRCode(payload string) (string, error) {
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("error encoding QR code: %w", err)
	}
	return q.ToSmallString(false), nil
}
