package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public catalog reads; everything under /api/products/import stays authenticated
	return []string{"/api/products", "/api/products/:slug", "/api/categories"}
}
