package retail

// Table names, in dependency order.
const (
	TableCategories        = "Categories"
	TableSubcategories     = "Subcategories"
	TableStores            = "Stores"
	TableProducts          = "Products"
	TableCustomers         = "Customers"
	TableSalesTransactions = "SalesTransactions"
)

// Column names a table column in file output (Name) and in SQL (SQLName).
type Column struct {
	Name    string
	SQLName string
}

// Table is a sink neutral view of one generated table. Row values are int,
// string, decimal.Decimal, time.Time (a calendar date) or nil.
type Table struct {
	Name    string
	SQLName string
	Columns []Column
	Rows    [][]any
}

// ColumnNames returns the file output column names.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// SQLColumnNames returns the SQL column names.
func (t Table) SQLColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.SQLName
	}
	return names
}

var (
	categoryColumns = []Column{
		{"CategoryID", "category_id"},
		{"CategoryName", "category_name"},
	}
	subcategoryColumns = []Column{
		{"SubcategoryID", "subcategory_id"},
		{"SubcategoryName", "subcategory_name"},
		{"CategoryID", "category_id"},
	}
	storeColumns = []Column{
		{"StoreID", "store_id"},
		{"StoreName", "store_name"},
		{"City", "city"},
		{"State", "state"},
		{"Region", "region"},
		{"StoreType", "store_type"},
	}
	productColumns = []Column{
		{"ProductID", "product_id"},
		{"ProductName", "product_name"},
		{"CategoryID", "category_id"},
		{"SubcategoryID", "subcategory_id"},
		{"Brand", "brand"},
		{"CostPrice", "cost_price"},
		{"SellingPrice", "selling_price"},
	}
	customerColumns = []Column{
		{"CustomerID", "customer_id"},
		{"FirstName", "first_name"},
		{"LastName", "last_name"},
		{"Email", "email"},
		{"Phone", "phone"},
		{"City", "city"},
		{"State", "state"},
		{"Country", "country"},
		{"CreatedDate", "created_date"},
	}
	transactionColumns = []Column{
		{"TransactionID", "transaction_id"},
		{"CustomerID", "customer_id"},
		{"ProductID", "product_id"},
		{"Quantity", "quantity"},
		{"UnitPrice", "unit_price"},
		{"Discount", "discount"},
		{"TransactionDate", "transaction_date"},
		{"StoreID", "store_id"},
		{"PaymentMethod", "payment_method"},
	}
)

// Tables returns the dataset's tables in dependency order: every table
// only references tables before it.
func (d *Dataset) Tables() []Table {
	cats := make([][]any, len(d.Categories))
	for i, c := range d.Categories {
		cats[i] = []any{c.ID, c.Name}
	}

	subs := make([][]any, len(d.Subcategories))
	for i, s := range d.Subcategories {
		subs[i] = []any{s.ID, s.Name, s.CategoryID}
	}

	stores := make([][]any, len(d.Stores))
	for i, s := range d.Stores {
		stores[i] = []any{s.ID, s.Name, s.City, s.State, s.Region, s.StoreType}
	}

	products := make([][]any, len(d.Products))
	for i, p := range d.Products {
		products[i] = []any{p.ID, p.Name, p.CategoryID, p.SubcategoryID, p.Brand, p.CostPrice, p.SellingPrice}
	}

	customers := make([][]any, len(d.Customers))
	for i, c := range d.Customers {
		customers[i] = []any{c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.City, c.State, c.Country, c.CreatedDate}
	}

	txns := make([][]any, len(d.Transactions))
	for i, t := range d.Transactions {
		var customerID any
		if t.CustomerID != nil {
			customerID = *t.CustomerID
		}
		txns[i] = []any{t.ID, customerID, t.ProductID, t.Quantity, t.UnitPrice, t.Discount,
			t.TransactionDate, t.StoreID, t.PaymentMethod}
	}

	return []Table{
		{Name: TableCategories, SQLName: "categories", Columns: categoryColumns, Rows: cats},
		{Name: TableSubcategories, SQLName: "subcategories", Columns: subcategoryColumns, Rows: subs},
		{Name: TableStores, SQLName: "stores", Columns: storeColumns, Rows: stores},
		{Name: TableProducts, SQLName: "products", Columns: productColumns, Rows: products},
		{Name: TableCustomers, SQLName: "customers", Columns: customerColumns, Rows: customers},
		{Name: TableSalesTransactions, SQLName: "sales_transactions", Columns: transactionColumns, Rows: txns},
	}
}
