// internal/population/regions.go
package population

import "strings"

// CanonicalStates is the closed set of 36 Indian states and union
// territories the persona snapshot is keyed by. Names are uppercase with
// collapsed whitespace, matching the snapshot preparation step.
var CanonicalStates = []string{
	"ANDAMAN AND NICOBAR ISLANDS",
	"ANDHRA PRADESH",
	"ARUNACHAL PRADESH",
	"ASSAM",
	"BIHAR",
	"CHANDIGARH",
	"CHHATTISGARH",
	"DADRA AND NAGAR HAVELI AND DAMAN AND DIU",
	"DELHI",
	"GOA",
	"GUJARAT",
	"HARYANA",
	"HIMACHAL PRADESH",
	"JAMMU AND KASHMIR",
	"JHARKHAND",
	"KARNATAKA",
	"KERALA",
	"LADAKH",
	"LAKSHADWEEP",
	"MADHYA PRADESH",
	"MAHARASHTRA",
	"MANIPUR",
	"MEGHALAYA",
	"MIZORAM",
	"NAGALAND",
	"ODISHA",
	"PUDUCHERRY",
	"PUNJAB",
	"RAJASTHAN",
	"SIKKIM",
	"TAMIL NADU",
	"TELANGANA",
	"TRIPURA",
	"UTTAR PRADESH",
	"UTTARAKHAND",
	"WEST BENGAL",
}

// NormalizeState uppercases and collapses whitespace so request filters and
// snapshot records compare exactly.
func NormalizeState(name string) string {
	return strings.Join(strings.Fields(strings.ToUpper(name)), " ")
}
