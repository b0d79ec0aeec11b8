// Package permissions holds the embedded route table the auth middleware reads.
// A route marked skip is public. A route listing roles is limited to them. Any
// other route, listed or not, needs a valid access token and nothing more.
package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
	Permissions []string `json:"permissions"`
}

// Allows reports whether role may call the route. An empty role list admits everyone.
func (p Permission) Allows(role string) bool {
	return len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	// Skip turns every check off. Local development only.
	Skip      bool         `json:"skip"`
	Endpoints []Permission `json:"endpoints"`
}

// FindPermissions looks up the chi route pattern, e.g. /api/seat/getById/{id}.
// Unknown routes yield the zero Permission.
func (r *PermissionData) FindPermissions(pattern, method string) Permission {
	for _, endpoint := range r.Endpoints {
		if endpoint.Path == pattern && strings.EqualFold(endpoint.Method, method) {
			return endpoint
		}
	}

	return Permission{}
}

func (r *PermissionData) IsPublic(pattern, method string) bool {
	return r.Skip || r.FindPermissions(pattern, method).Skip
}

// Get decodes the embedded table. The table ships with the binary, so a decode
// failure is a build defect and stops the process.
func Get() *PermissionData {
	var table PermissionData

	if err := json.Unmarshal(permissionsData, &table); err != nil {
		log.Fatal().Err(err).Msg("Failed to decode embedded permissions")
	}

	log.Info().Int("endpoints", len(table.Endpoints)).Msg("Loaded embedded permissions")

	return &table
}
