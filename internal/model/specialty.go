package model

// specialtyBillingCodes is the closed specialty→CUPS billing code table. The
// billing code is a pure function of the specialty code; every specialty
// change writes both together so they can never disagree.
var specialtyBillingCodes = map[string]string{
	"016": "890201", // general medicine
	"022": "890203", // dentistry
	"062": "890262", // occupational medicine
	"036": "890206", // nutrition
}

// BillingCodeFor returns the billing code derived from a specialty code, and
// whether the specialty is known.
func BillingCodeFor(specialtyCode string) (string, bool) {
	code, ok := specialtyBillingCodes[specialtyCode]
	return code, ok
}
