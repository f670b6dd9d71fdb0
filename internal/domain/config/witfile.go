package config

// WitFileConfig represents the contents of witnet.toml
type WitFileConfig struct {
	RPC   RPCConfig   `toml:"rpc"`
	Paths PathsConfig `toml:"paths"`
}

// RPCConfig locates the ETH/RPC gateway. URL, when set, wins over Host and Port.
type RPCConfig struct {
	URL  string `toml:"url"`
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// PathsConfig locates the local override files, relative to the project root
type PathsConfig struct {
	Addresses string `toml:"addresses"`
	Assets    string `toml:"assets"`
}
