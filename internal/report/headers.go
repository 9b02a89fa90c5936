package report

const (
	HeaderSalesID   = "Sales ID"
	HeaderSalesName = "Sales Name"
	HeaderActivity  = "Activity"

	// HeaderTime labels the time column in national trade time.
	HeaderTime      = "Time"
	HeaderLocalTime = "Local Time"
)

type HeaderSelector interface {
	Headers(isNatTrade bool) []string
}

type DefaultHeaders struct{}

func (DefaultHeaders) Headers(isNatTrade bool) []string {
	timeHeader := HeaderLocalTime
	if isNatTrade {
		timeHeader = HeaderTime
	}
	return []string{
		HeaderSalesID,
		HeaderSalesName,
		HeaderActivity,
		timeHeader,
	}
}
