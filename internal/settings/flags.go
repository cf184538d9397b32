package settings

type Flag struct {
	Name  string
	Short string
}

type flagNames struct {
	Verbose         Flag
	CliEnvFile      Flag
	Name            Flag
	Force           Flag
	Append          Flag
	TargetDirectory Flag
	Passphrase      Flag
	Param           Flag
	Replace         Flag
}

var Flags = flagNames{
	Verbose:         Flag{"verbose", "v"},
	CliEnvFile:      Flag{"env", "e"},
	Name:            Flag{"name", "n"},
	Force:           Flag{"force", "f"},
	Append:          Flag{"append", "a"},
	TargetDirectory: Flag{"target-directory", "d"},
	Passphrase:      Flag{"passphrase", "p"},
	Param:           Flag{"param", "P"},
	Replace:         Flag{"replace", ""},
}
