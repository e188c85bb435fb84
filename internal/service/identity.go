package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var slugStripPattern = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateStoreID slugs a store name and appends 4 random hex chars,
// e.g. "CFA Gateway" → "cfa-gateway-a8f2". The suffix keeps IDs
// shareable as link fragments without collisions between same-named
// stores.
func GenerateStoreID(name string) string {
	slug := slugStripPattern.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")[:4]
	if slug == "" {
		return hex
	}
	return fmt.Sprintf("%s-%s", slug, hex)
}

// GenerateManagementKey returns a write-access key in xxxx-xxxx-xxxx
// form.
func GenerateManagementKey() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s-%s-%s", hex[0:4], hex[4:8], hex[8:12])
}
