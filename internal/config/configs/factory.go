package configs

// Factory holds campaign-factory configuration. Owner is the address
// allowed to set special fees, update the implementation ref and
// administer created campaigns. DefaultFeeBps is the fee in basis points
// applied when a creator has no pending override.
type Factory struct {
	Owner         string `env:"OWNER" envDefault:"factory-owner"`
	DefaultFeeBps int32  `env:"DEFAULT_FEE_BPS" envDefault:"250"`
}
