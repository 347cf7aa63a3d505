package config

type Env string

const (
	EnvNone        Env = ""
	EnvDevnet      Env = "devnet"
	EnvMainnetBeta Env = "mainnet-beta"
)

type Config struct {
	ENV                         Env
	CLEARING_HOUSE_PROGRAM_ID   string
	USDC_MINT_ADDRESS           string
	PYTH_ORACLE_MAPPING_ADDRESS string
}

const CLEARING_HOUSE_PROGRAM_ID = "dammHkt7jmytvbS3nHTxQNEcP59aE57nxwV21YdqEDN"

var Configs = map[Env]Config{
	EnvDevnet: {
		ENV:                         "devnet",
		CLEARING_HOUSE_PROGRAM_ID:   CLEARING_HOUSE_PROGRAM_ID,
		USDC_MINT_ADDRESS:           "8zGuJQqwhZafTah7Uc7Z4tXRnguqkn5KLFAP8oV6PHe2",
		PYTH_ORACLE_MAPPING_ADDRESS: "BmA9Z6FjioHJPpjT39QazZyhDRUdZy2ezwx4GiDdE2u2",
	},
	EnvMainnetBeta: {
		ENV:                         "mainnet-beta",
		CLEARING_HOUSE_PROGRAM_ID:   CLEARING_HOUSE_PROGRAM_ID,
		USDC_MINT_ADDRESS:           "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		PYTH_ORACLE_MAPPING_ADDRESS: "AHtgzX45WTKfkPG53L6WYhGEXwQkN1BVknET3sVsLL8J",
	},
}

// GetConfig looks up the static config for an env. Callers keep the returned
// value themselves; there is no package-level current config.
func GetConfig(env Env) Config {
	return Configs[env]
}
