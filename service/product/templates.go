package product

// Starter CSV content per source format, served as downloadable templates by
// the API and the products:template command. Static example data only.

const standardTemplate = `name,name_ar,slug,description,category,subcategory,price,compare_at_price,discount_percentage,sku,stock_quantity,featured_image,images,tags,is_featured,is_on_sale,is_new
Fern,سرخس,fern,Low-maintenance indoor fern,Plants,Indoor,29.99,39.99,,PLT-001,25,https://example.com/fern.jpg,https://example.com/fern-2.jpg|https://example.com/fern-3.jpg,"indoor,green",true,true,false
Ceramic Pot,,ceramic-pot,Hand-glazed ceramic pot,Accessories,,14.50,,20,ACC-014,40,https://example.com/pot.jpg,,"pot,ceramic",false,false,true
`

const shopifyTemplate = `Handle,Title,Body (HTML),Vendor,Type,Tags,Published,Option1 Name,Option1 Value,Variant SKU,Variant Grams,Variant Inventory Qty,Variant Price,Variant Compare At Price,Image Src
fern,Fern,<p>Low-maintenance indoor fern</p>,Greenhouse Co,Plants,"indoor,green",TRUE,Size,Small,PLT-001,350,25,29.99,39.99,https://example.com/fern.jpg
fern,,,,,,"",Size,Large,PLT-002,600,12,44.99,,https://example.com/fern-2.jpg
ceramic-pot,Ceramic Pot,<p>Hand-glazed ceramic pot</p>,Greenhouse Co,Accessories,"pot,ceramic",TRUE,,,ACC-014,900,40,14.50,,https://example.com/pot.jpg
`

const wooCommerceTemplate = `ID,Type,SKU,Name,Published,Featured,Short description,Description,Regular price,Sale price,Categories,Tags,Images,Stock
101,simple,PLT-001,Fern,1,1,Low-maintenance indoor fern,Thrives in shade and humidity,39.99,29.99,Plants > Indoor,"indoor,green","https://example.com/fern.jpg,https://example.com/fern-2.jpg",25
102,variable,ACC-014-parent,Ceramic Pot,1,0,Hand-glazed ceramic pot,Available in three sizes,,,Accessories,"pot,ceramic",https://example.com/pot.jpg,40
103,variation,ACC-014-S,Ceramic Pot - Small,1,0,,,18.00,14.50,Accessories,,,15
`

// Template returns the starter CSV for a source format.
func Template(f SourceFormat) string {
	switch f {
	case FormatShopify:
		return shopifyTemplate
	case FormatWooCommerce:
		return wooCommerceTemplate
	default:
		return standardTemplate
	}
}
