package storage

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"

	pgmodels "github.com/supplyhub/yml-feed-parser/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBRun(run *models.Run) *pgmodels.Run {
	return &pgmodels.Run{
		ParametersVersion: run.ParametersVersion,
		FeedID:            int32(run.FeedID),
		FinishedAt:        run.FinishedAt,
		Success:           run.IsSuccess,
		StatusMessage:     run.StatusMessage,
		CreatedParameters: run.CreatedParameters,
		UpdatedParameters: run.UpdatedParameters,
		DeletedParameters: run.DeletedParameters,
	}
}

// ToDBParameter converts models.ParsedParameter into postgres parameter model.
func ToDBParameter(
	param *models.ParsedParameter,
	feedID int32,
	version int64,
	templateID string,
	storeID string,
) (*pgmodels.Parameter, error) {
	nestedValues, err := toDBNestedValues(param.NestedValues)
	if err != nil {
		return nil, err
	}

	dbParam := pgmodels.Parameter{
		FeedID:       feedID,
		Version:      version,
		Name:         param.Name,
		Value:        param.Value,
		Type:         string(param.Type),
		Category:     string(param.Category),
		XMLPath:      param.XMLPath,
		IsRequired:   param.IsRequired,
		IsActive:     param.IsActive,
		DisplayOrder: int32(param.DisplayOrder),
		ParentName:   param.Parent,
		NestedValues: nestedValues,
	}

	if templateID != "" {
		dbParam.TemplateID = lo.ToPtr(templateID)
	}
	if storeID != "" {
		dbParam.StoreID = lo.ToPtr(storeID)
	}

	return &dbParam, nil
}

// FromDBParameter converts postgres parameter model into models.ParsedParameter.
func FromDBParameter(dbParam *pgmodels.Parameter) (*models.ParsedParameter, error) {
	nestedValues, err := fromDBNestedValues(dbParam.NestedValues)
	if err != nil {
		return nil, err
	}

	return &models.ParsedParameter{
		Name:         dbParam.Name,
		Value:        dbParam.Value,
		Type:         models.ParameterType(dbParam.Type),
		Category:     models.ParameterCategory(dbParam.Category),
		XMLPath:      dbParam.XMLPath,
		IsRequired:   dbParam.IsRequired,
		IsActive:     dbParam.IsActive,
		DisplayOrder: int(dbParam.DisplayOrder),
		Parent:       dbParam.ParentName,
		NestedValues: nestedValues,
	}, nil
}

func toDBNestedValues(values []models.NestedValue) (*string, error) {
	if len(values) == 0 {
		return nil, nil
	}

	encoded, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("can't encode nested values: %w", err)
	}

	return lo.ToPtr(string(encoded)), nil
}

func fromDBNestedValues(encoded *string) ([]models.NestedValue, error) {
	if encoded == nil || *encoded == "" {
		return nil, nil
	}

	var values []models.NestedValue
	if err := json.Unmarshal([]byte(*encoded), &values); err != nil {
		return nil, fmt.Errorf("can't decode nested values: %w", err)
	}

	return values, nil
}
