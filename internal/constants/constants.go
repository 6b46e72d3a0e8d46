package constants

const (
	Version        = `0.0.1`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.studio/`
	StateDirName   = `state`

	// OrganizationKey is the storage key the sidebar arrangement is
	// persisted under. Changing it orphans existing documents, so it is
	// versioned explicitly.
	OrganizationKey = `sidebar_organization_v1`
)
