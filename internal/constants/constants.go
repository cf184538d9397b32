package constants

const (
	// DescriptorFileName is the template descriptor expected at the root of every template.
	DescriptorFileName = ".scaffold.toml"

	// VCSDirName is never copied out of a template, at any depth.
	VCSDirName = ".git"

	// RemoteTemplateSuffix marks a template location as a git remote rather than a local path.
	RemoteTemplateSuffix = ".git"

	// Reserved parameter names injected by the engine
	NameParameter      = "name"
	TargetDirParameter = "target_dir"

	// User configuration
	ConfigDirName      = ".scaffold"
	ConfigFileName     = "config"
	ConfigFileType     = "yaml"
	TemplatesFileName  = "templates.yaml"
	DefaultEnvFileName = ".env"
	EnvPrefix          = "SCAFFOLD"

	// Logging Levels
	DefaultLogLevel = "info"

	// Remote fetch
	SSHKeyEnvVar       = "SCAFFOLD_SSH_KEY"
	GitHubTokenEnvVar  = "GITHUB_TOKEN"
	DefaultSSHKeyFile  = "id_rsa"
	DefaultSSHUser     = "git"
	GitHubTokenAccount = "x-access-token"

	// Permissions
	DefaultDirPerm   = 0o755
	DefaultCachePerm = 0o750
	ConfigFilePerm   = 0o600

	MaxProjectNameLength = 64
)
