// File: models/catalog.go
package models

const (
	BrandsCollection   = "brands"
	ProductsCollection = "products"

	FieldBrandID     = "brandId"
	FieldName        = "name"
	FieldDescription = "description"
	FieldRating      = "rating"
)

// Brand is read-only catalog metadata.
type Brand struct {
	Document
}

// Product belongs optionally to a brand. The brand reference is not checked.
type Product struct {
	Document
}

func (p Product) BrandID() string {
	s, _ := p.StringField(FieldBrandID)
	return s
}

// Name reports false when the product has no string name.
func (p Product) Name() (string, bool) {
	return p.StringField(FieldName)
}

func (p Product) Description() (string, bool) {
	return p.StringField(FieldDescription)
}

// Rating is zero for unrated products.
func (p Product) Rating() float64 {
	f, _ := p.NumberField(FieldRating)
	return f
}

func BrandsFrom(docs []Document) []Brand {
	out := make([]Brand, 0, len(docs))
	for _, d := range docs {
		out = append(out, Brand{Document: d})
	}
	return out
}

func ProductsFrom(docs []Document) []Product {
	out := make([]Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, Product{Document: d})
	}
	return out
}
