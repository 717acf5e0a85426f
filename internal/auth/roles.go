package auth

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Role is a named capability. Its ID is the keccak256 hash of the name.
type Role struct {
	Name string
	ID   common.Hash
}

// NewRole derives a role from its name.
func NewRole(name string) Role {
	return Role{Name: name, ID: crypto.Keccak256Hash([]byte(name))}
}

var (
	MinterRole     = NewRole("MINTER_ROLE")
	BurnerRole     = NewRole("BURNER_ROLE")
	MaintainerRole = NewRole("MAINTAINER_ROLE")
	SwapperRole    = NewRole("SWAPPER_ROLE")
	PauserRole     = NewRole("PAUSER_ROLE")
	SupportRole    = NewRole("SUPPORT_ROLE")
)

var knownRoles = []Role{MinterRole, BurnerRole, MaintainerRole, SwapperRole, PauserRole, SupportRole}

// RoleByName looks up a known role. The "_ROLE" suffix is optional.
func RoleByName(name string) (Role, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if !strings.HasSuffix(name, "_ROLE") {
		name += "_ROLE"
	}
	for _, r := range knownRoles {
		if r.Name == name {
			return r, true
		}
	}
	return Role{}, false
}

// RoleByID looks up a known role by its hash.
func RoleByID(id common.Hash) (Role, bool) {
	for _, r := range knownRoles {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}
