package product

// CanonicalProductRecord is the format-independent intermediate shape every
// schema parser produces. All fields are kept as raw strings; numeric and
// boolean coercion happens later in BuildProduct so that parsers stay dumb
// column mappers.
type CanonicalProductRecord struct {
	Name               string
	NameAr             string
	Slug               string
	Description        string
	DescriptionAr      string
	Category           string
	Subcategory        string
	Price              string
	CompareAtPrice     string
	DiscountPercentage string
	SKU                string
	StockQuantity      string
	FeaturedImage      string
	Images             string // delimited by | or ,
	Tags               string // delimited by ,
	IsFeatured         string
	IsOnSale           string
	IsNew              string
	Weight             string
	Dimensions         string
}

// ValidatedProductRecord is the persistence-ready shape produced by
// BuildProduct: numerics parsed, lists split, flags coerced, slug resolved.
type ValidatedProductRecord struct {
	Name          string
	NameAr        string
	Slug          string
	Description   string
	DescriptionAr string
	Category      string
	Subcategory   string
	Price         float64
	ComparePrice  *float64 // nil when the source carried no compare-at price
	SKU           string
	StockQuantity int
	FeaturedImage string
	Images        []string
	Tags          []string
	IsFeatured    bool
	IsOnSale      bool
	IsNew         bool
	Weight        float64
	Dimensions    string
}
