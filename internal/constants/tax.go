package constants

// ServedCountry is the only country the store collects sales tax for.
// Destinations outside it are priced with zero tax.
const ServedCountry = "US"

// NoSalesTaxStates are US states with no statewide sales tax. Orders shipped
// there never hit the external rate provider.
var NoSalesTaxStates = map[string]bool{
	"AK": true,
	"DE": true,
	"MT": true,
	"NH": true,
	"OR": true,
}
