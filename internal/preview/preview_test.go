package preview_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
	"github.com/supplyhub/yml-feed-parser/internal/preview"
)

func testStructure() *models.ParsedStructure {
	return &models.ParsedStructure{
		Shop: models.ShopInfo{
			Name:    "Склад Електроніки",
			Company: "Elektronika LLC",
			URL:     "https://elektronika.example.com",
		},
		Currencies: []models.Currency{
			{ID: "UAH", Rate: "1"},
		},
		Categories: []models.Category{
			{ID: "1", Name: "Телефони"},
		},
		Offers: []models.Offer{
			{
				ID:   "P-1",
				Name: "Смартфон",
				Fields: []models.OfferField{
					{Name: "name", Value: "Смартфон"},
					{Name: "price", Value: "9999.5"},
					{Name: "picture", Value: "https://example.com/1.jpg"},
					{Name: "description", Value: "<p>Опис</p>", CDATA: true},
				},
				Characteristics: []models.Characteristic{
					{Name: "Колір", Value: "Чорний", Language: lo.ToPtr("uk")},
					{Name: "Колір", Value: "Черный", Language: lo.ToPtr("ru")},
					{Name: "Матеріал", Value: "Скло"},
				},
			},
		},
	}
}

func TestUnitProject(t *testing.T) {
	want := models.PreviewNode{
		Icon:  "store",
		Label: "Склад Електроніки",
		Children: []models.PreviewNode{
			{Icon: "field", Label: "name", Value: lo.ToPtr("Склад Електроніки")},
			{Icon: "field", Label: "company", Value: lo.ToPtr("Elektronika LLC")},
			{Icon: "field", Label: "url", Value: lo.ToPtr("https://elektronika.example.com")},
			{
				Icon:  "coins",
				Label: "Currencies",
				Children: []models.PreviewNode{
					{Icon: "currency", Label: "UAH", Value: lo.ToPtr("1")},
				},
			},
			{
				Icon:  "folder-tree",
				Label: "Categories",
				Children: []models.PreviewNode{
					{Icon: "folder", Label: "Телефони", Value: lo.ToPtr("1")},
				},
			},
			{
				Icon:  "package",
				Label: "Offers",
				Children: []models.PreviewNode{
					{
						Icon:  "box",
						Label: "Смартфон",
						Children: []models.PreviewNode{
							{Icon: "field", Label: "name", Value: lo.ToPtr("Смартфон")},
							{Icon: "banknote", Label: "price", Value: lo.ToPtr("9999.5")},
							{Icon: "image", Label: "picture", Value: lo.ToPtr("https://example.com/1.jpg")},
							{Icon: "file-text", Label: "description", Value: lo.ToPtr("<p>Опис</p>"), CDATA: true},
							{
								Icon:  "tags",
								Label: "Characteristics",
								Children: []models.PreviewNode{
									{Icon: "palette", Label: "Колір", Value: lo.ToPtr("Чорний"), Multilingual: true},
									{Icon: "layers", Label: "Матеріал", Value: lo.ToPtr("Скло")},
								},
							},
						},
					},
				},
			},
		},
	}

	proj := preview.Projector{}

	tree := proj.Project(testStructure())

	assert.Equal(t, want, tree, "should project the whole structure into a display tree")
}

func TestUnitProjectOfferLabelFallback(t *testing.T) {
	structure := &models.ParsedStructure{
		Shop:   models.ShopInfo{Name: "Shop"},
		Offers: []models.Offer{{ID: "NO-NAME"}},
	}

	proj := preview.Projector{}

	tree := proj.Project(structure)

	offers := tree.Children[len(tree.Children)-1]
	require.Len(t, offers.Children, 1, "should project the offer")
	assert.Equal(t, "NO-NAME", offers.Children[0].Label, "offer without name should fall back to its id")
}

func TestUnitStats(t *testing.T) {
	proj := preview.Projector{}

	tree := proj.Project(testStructure())
	stats := proj.Stats(&tree)

	want := models.PreviewStats{
		TotalNodes:        17,
		ParameterNodes:    11,
		MultilingualNodes: 1,
		CDATANodes:        1,
	}

	assert.Equal(t, want, stats, "should count nodes by a full traversal")
}

func TestUnitStatsRecompute(t *testing.T) {
	proj := preview.Projector{}

	tree := proj.Project(testStructure())

	first := proj.Stats(&tree)

	tree.Children = append(tree.Children, models.PreviewNode{
		Icon:  "field",
		Label: "extra",
		Value: lo.ToPtr("value"),
	})

	second := proj.Stats(&tree)

	assert.Equal(t, first.TotalNodes+1, second.TotalNodes, "stats should be recomputed from the tree")
	assert.Equal(t, first.ParameterNodes+1, second.ParameterNodes, "stats should count the added parameter node")
}
