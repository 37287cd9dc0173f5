package preview

import (
	"github.com/samber/lo"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
)

// Projector builds display trees and statistics from parsed structures
// for operator confirmation before anything is persisted.
type Projector struct{}

// Project renders the structure as a nested display tree. The structure
// is never mutated, the tree itself is never persisted.
func (p Projector) Project(structure *models.ParsedStructure) models.PreviewNode {
	root := models.PreviewNode{
		Icon:  iconShop,
		Label: structure.Shop.Name,
	}

	root.Children = append(root.Children,
		models.PreviewNode{Icon: iconField, Label: "name", Value: lo.ToPtr(structure.Shop.Name)},
		models.PreviewNode{Icon: iconField, Label: "company", Value: lo.ToPtr(structure.Shop.Company)},
		models.PreviewNode{Icon: iconField, Label: "url", Value: lo.ToPtr(structure.Shop.URL)},
	)

	if len(structure.Currencies) > 0 {
		root.Children = append(root.Children, projectCurrencies(structure.Currencies))
	}
	if len(structure.Categories) > 0 {
		root.Children = append(root.Children, projectCategories(structure.Categories))
	}
	if len(structure.Offers) > 0 {
		root.Children = append(root.Children, projectOffers(structure.Offers))
	}

	return root
}

// Stats recomputes aggregate counts by a full traversal of the tree,
// nothing is cached between calls.
func (p Projector) Stats(tree *models.PreviewNode) models.PreviewStats {
	var stats models.PreviewStats
	countNodes(tree, &stats)
	return stats
}

func countNodes(node *models.PreviewNode, stats *models.PreviewStats) {
	stats.TotalNodes++
	if node.Value != nil {
		stats.ParameterNodes++
	}
	if node.Multilingual {
		stats.MultilingualNodes++
	}
	if node.CDATA {
		stats.CDATANodes++
	}

	for ix := range node.Children {
		countNodes(&node.Children[ix], stats)
	}
}

func projectCurrencies(currencies []models.Currency) models.PreviewNode {
	return models.PreviewNode{
		Icon:  iconCurrencies,
		Label: "Currencies",
		Children: lo.Map(currencies, func(c models.Currency, _ int) models.PreviewNode {
			return models.PreviewNode{
				Icon:  iconCurrency,
				Label: c.ID,
				Value: lo.ToPtr(c.Rate),
			}
		}),
	}
}

func projectCategories(categories []models.Category) models.PreviewNode {
	return models.PreviewNode{
		Icon:  iconCategories,
		Label: "Categories",
		Children: lo.Map(categories, func(c models.Category, _ int) models.PreviewNode {
			return models.PreviewNode{
				Icon:  iconCategory,
				Label: c.Name,
				Value: lo.ToPtr(c.ID),
			}
		}),
	}
}

func projectOffers(offers []models.Offer) models.PreviewNode {
	return models.PreviewNode{
		Icon:  iconOffers,
		Label: "Offers",
		Children: lo.Map(offers, func(o models.Offer, _ int) models.PreviewNode {
			return projectOffer(&o)
		}),
	}
}

func projectOffer(offer *models.Offer) models.PreviewNode {
	label := offer.Name
	if label == "" {
		label = offer.ID
	}

	node := models.PreviewNode{
		Icon:  iconOffer,
		Label: label,
	}

	for ix := range offer.Fields {
		field := &offer.Fields[ix]
		node.Children = append(node.Children, models.PreviewNode{
			Icon:  fieldIcon(field.Name),
			Label: field.Name,
			Value: lo.ToPtr(field.Value),
			CDATA: field.CDATA,
		})
	}

	if len(offer.Characteristics) > 0 {
		node.Children = append(node.Children, projectCharacteristics(offer.Characteristics))
	}

	return node
}

func projectCharacteristics(characteristics []models.Characteristic) models.PreviewNode {
	node := models.PreviewNode{
		Icon:  "tags",
		Label: "Characteristics",
	}

	names := make([]string, 0, len(characteristics))
	grouped := make(map[string][]models.Characteristic, len(characteristics))
	for ix := range characteristics {
		name := characteristics[ix].Name
		if _, ok := grouped[name]; !ok {
			names = append(names, name)
		}
		grouped[name] = append(grouped[name], characteristics[ix])
	}

	for _, name := range names {
		group := grouped[name]
		node.Children = append(node.Children, models.PreviewNode{
			Icon:         characteristicIcon(name),
			Label:        name,
			Value:        lo.ToPtr(group[0].Value),
			Multilingual: len(group) > 1,
		})
	}

	return node
}
