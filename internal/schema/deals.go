package schema

// DealColumns returns the column schema of the deal table.
func DealColumns() Schema {
	return Schema{
		{Key: "id", Type: TypeInt, Label: "ID"},
		{Key: "issuerName", Type: TypeString, Label: "Issuer"},
		{Key: "dealName", Type: TypeString, Label: "Deal"},
		{Key: "bloombergId", Type: TypeString, Label: "Bloomberg ID"},
		{Key: "total", Type: TypeDecimal, Label: "Total"},
		{Key: "industry", Type: TypeString, Label: "Industry"},
		{Key: "status", Type: TypeString, Label: "Status"},
		{Key: "analysts", Type: TypeStringSlice, Label: "Analysts"},
		{Key: "docCount", Type: TypeInt, Label: "Docs"},
		{Key: "customDealIdentifiers", Type: TypeStringSlice, Label: "Identifiers"},
	}
}
