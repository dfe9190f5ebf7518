// model/enums.go
package model

import (
	"encoding/json"
	"fmt"
)

// Role is the closed set of requester roles. Values outside the set are
// rejected at the system boundary, not coerced.
type Role string

const (
	RoleDevOps       Role = "DevOps"
	RoleSRE          Role = "SRE"
	RoleDataEngineer Role = "DataEngineer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDevOps, RoleSRE, RoleDataEngineer:
		return true
	}
	return false
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !Role(s).Valid() {
		return fmt.Errorf("unrecognized role: %q", s)
	}
	*r = Role(s)
	return nil
}

// Permission is the closed set of grantable permissions.
type Permission string

const (
	PermReadLogs        Permission = "read_logs"
	PermWriteConfigs    Permission = "write_configs"
	PermRestartServices Permission = "restart_services"
	PermReadData        Permission = "read_data"
	PermWriteData       Permission = "write_data"
)

func (p Permission) Valid() bool {
	switch p {
	case PermReadLogs, PermWriteConfigs, PermRestartServices, PermReadData, PermWriteData:
		return true
	}
	return false
}

func (p *Permission) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !Permission(s).Valid() {
		return fmt.Errorf("unrecognized permission: %q", s)
	}
	*p = Permission(s)
	return nil
}

// PermissionSet is an unordered set of permissions.
type PermissionSet map[Permission]struct{}

func NewPermissionSet(perms ...Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// Equal reports whether both sets contain exactly the same permissions.
func (s PermissionSet) Equal(other PermissionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if _, ok := other[p]; !ok {
			return false
		}
	}
	return true
}

// ResourceType is the closed set of protected resource types.
type ResourceType string

const (
	ResourceFinancialReport ResourceType = "FINANCIAL_REPORT"
	ResourceSystemLogs      ResourceType = "SYSTEM_LOGS"
	ResourceAudit           ResourceType = "AUDIT"
)

func (t ResourceType) Valid() bool {
	switch t {
	case ResourceFinancialReport, ResourceSystemLogs, ResourceAudit:
		return true
	}
	return false
}

func (t *ResourceType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !ResourceType(s).Valid() {
		return fmt.Errorf("unrecognized resource type: %q", s)
	}
	*t = ResourceType(s)
	return nil
}

// Location is the closed set of request origin locations.
type Location string

const (
	LocationOffice Location = "office"
	LocationRemote Location = "remote"
)

func (l Location) Valid() bool {
	return l == LocationOffice || l == LocationRemote
}

func (l *Location) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !Location(s).Valid() {
		return fmt.Errorf("unrecognized location: %q", s)
	}
	*l = Location(s)
	return nil
}

// Device is the closed set of requesting device classes.
type Device string

const (
	DeviceLaptop  Device = "laptop"
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
)

func (d Device) Valid() bool {
	switch d {
	case DeviceLaptop, DeviceDesktop, DeviceMobile:
		return true
	}
	return false
}

func (d *Device) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !Device(s).Valid() {
		return fmt.Errorf("unrecognized device: %q", s)
	}
	*d = Device(s)
	return nil
}
