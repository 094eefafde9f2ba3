package model

// OutputSchema is the contractually required output shape of the dashboard.
// Uploaded files are projected down to the intersection with this list; the
// four "(converted)" revenue columns carry numeric cells, everything else is
// free-form text.
var OutputSchema = Schema{
	{Name: "Account", Type: ColumnString},
	{Name: "Opportunity ID", Type: ColumnString},
	{Name: "Opportunity Name", Type: ColumnString},
	{Name: "Market", Type: ColumnString},
	{Name: "Primary Industry", Type: ColumnString},
	{Name: "Responsible Delivery Entity", Type: ColumnString},
	{Name: "Description", Type: ColumnString},
	{Name: "Stage", Type: ColumnString},
	{Name: "Fiscal Period", Type: ColumnString},
	{Name: "Total Current Revenue (converted)", Type: ColumnNumber},
	{Name: "SI SG Revenue (converted)", Type: ColumnNumber},
	{Name: "SC SG Revenue (converted)", Type: ColumnNumber},
	{Name: "Con SG Revenue (converted)", Type: ColumnNumber},
	{Name: "Primary Opportunity Lead", Type: ColumnString},
	{Name: "Client Account Lead", Type: ColumnString},
}

// FilterColumns are the columns exposed as multiselect filters.
var FilterColumns = []string{
	"Account",
	"Market",
	"Description",
	"Stage",
	"Fiscal Period",
}

// Columns driving the summary metrics and charts.
const (
	GroupColumn      = "Account"
	RevenueColumn    = "Total Current Revenue (converted)"
	IdentifierColumn = "Opportunity ID"
)
