package curve

import (
	"github.com/andyballingall/curvecheck/internal/schema"
)

// Fixed market conventions accepted in configuration documents.
var (
	DayCounter = schema.Enum{Name: "DayCounter", Values: []string{
		"Actual360", "Actual365", "Thirty360",
	}}
	Frequency = schema.Enum{Name: "Frequency", Values: []string{
		"Annual", "Semiannual", "Quarterly", "Monthly", "Weekly", "Daily", "Once",
	}}
	Compounding = schema.Enum{Name: "Compounding", Values: []string{
		"Simple", "Compounded", "Continuous", "SimpleThenCompounded",
	}}
	Convention = schema.Enum{Name: "Convention", Values: []string{
		"ModifiedFollowing", "Following", "ModifiedPreceding", "Preceding", "Unadjusted",
	}}
	Calendar = schema.Enum{Name: "Calendar", Values: []string{
		"UnitedStates", "Chile", "TARGET", "Brazil", "NullCalendar",
	}}
	Currency = schema.Enum{Name: "Currency", Values: []string{
		"USD", "CLP", "EUR", "BRL", "COP", "MXN", "CLF",
	}}
)

// HelperType selects the helperConfig and marketConfig schemas of a rate helper.
type HelperType string

const (
	Deposit    HelperType = "Deposit"
	Swap       HelperType = "Swap"
	FxSwap     HelperType = "FxSwap"
	Xccy       HelperType = "Xccy"
	TenorBasis HelperType = "TenorBasis"
	XccyBasis  HelperType = "XccyBasis"
	OIS        HelperType = "OIS"
	Bond       HelperType = "Bond"
)

// HelperTypes lists every helper type in declaration order.
var HelperTypes = []HelperType{Deposit, Swap, FxSwap, Xccy, TenorBasis, XccyBasis, OIS, Bond}

// CurveType selects the schema of a curve.
type CurveType string

const (
	Piecewise CurveType = "Piecewise"
	Discount  CurveType = "Discount"
)

var CurveTypes = []CurveType{Piecewise, Discount}

// IndexType names the kind of rate index a curve projects.
type IndexType string

const (
	IborIndex      IndexType = "IborIndex"
	OvernightIndex IndexType = "OvernightIndex"
)

var IndexTypes = []IndexType{IborIndex, OvernightIndex}

var (
	helperTypeEnum = enumOf("HelperType", HelperTypes)
	curveTypeEnum  = enumOf("CurveType", CurveTypes)
	indexTypeEnum  = enumOf("IndexType", IndexTypes)
)

// ParseHelperType resolves s to a HelperType. Matching is case-sensitive.
func ParseHelperType(s string) (HelperType, bool) {
	h := HelperType(s)
	return h, helperTypeEnum.Contains(s)
}

// ParseCurveType resolves s to a CurveType. Matching is case-sensitive.
func ParseCurveType(s string) (CurveType, bool) {
	c := CurveType(s)
	return c, curveTypeEnum.Contains(s)
}

// ParseIndexType resolves s to an IndexType. Matching is case-sensitive.
func ParseIndexType(s string) (IndexType, bool) {
	i := IndexType(s)
	return i, indexTypeEnum.Contains(s)
}

func enumOf[T ~string](name string, values []T) schema.Enum {
	e := schema.Enum{Name: name, Values: make([]string, len(values))}
	for i, v := range values {
		e.Values[i] = string(v)
	}
	return e
}
