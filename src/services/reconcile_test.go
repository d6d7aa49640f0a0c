package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hotelops/backoffice/src/apperrors"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/models"
)

func TestPlanVariants(t *testing.T) {
	stored := []models.MenuVariantModel{
		{ID: 10, MenuID: 1, VariantType: "Small", Rate: 100},
		{ID: 11, MenuID: 1, VariantType: "Large", Rate: 180},
		{ID: 12, MenuID: 1, VariantType: "Family", Rate: 300},
	}

	plan, err := PlanVariants(1, stored, []dtos.VariantInput{
		{ID: intPtr(10), VariantType: "Small", Rate: 120},
		{ID: intPtr(11), VariantType: "Large", Rate: 180},
		{VariantType: "Medium", Rate: 150},
	})
	if err != nil {
		t.Fatalf("PlanVariants: %v", err)
	}

	if len(plan.Update) != 1 || plan.Update[0].ID != 10 || plan.Update[0].Rate != 120 {
		t.Fatalf("update = %+v", plan.Update)
	}
	if len(plan.Insert) != 1 || plan.Insert[0].VariantType != "Medium" || plan.Insert[0].MenuID != 1 || plan.Insert[0].ID != 0 {
		t.Fatalf("insert = %+v", plan.Insert)
	}
	if !reflect.DeepEqual(plan.Delete, []int{12}) {
		t.Fatalf("delete = %v", plan.Delete)
	}
}

func TestPlanVariantsUnchangedIsEmpty(t *testing.T) {
	stored := []models.MenuVariantModel{{ID: 3, MenuID: 2, VariantType: "Half", Rate: 50}}
	plan, err := PlanVariants(2, stored, []dtos.VariantInput{{ID: intPtr(3), VariantType: "Half", Rate: 50}})
	if err != nil {
		t.Fatalf("PlanVariants: %v", err)
	}
	if len(plan.Insert)+len(plan.Update)+len(plan.Delete) != 0 {
		t.Fatalf("expected empty plan, got %+v", plan)
	}
}

func TestPlanVariantsRejects(t *testing.T) {
	stored := []models.MenuVariantModel{{ID: 3, MenuID: 2, VariantType: "Half", Rate: 50}}

	cases := []struct {
		name      string
		submitted []dtos.VariantInput
		want      error
	}{
		{"foreign id", []dtos.VariantInput{{ID: intPtr(99), VariantType: "Full", Rate: 90}}, apperrors.ErrReference},
		{"repeated id", []dtos.VariantInput{
			{ID: intPtr(3), VariantType: "Half", Rate: 50},
			{ID: intPtr(3), VariantType: "Half", Rate: 55},
		}, apperrors.ErrValidation},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanVariants(2, stored, tt.submitted)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPlanAddonLinks(t *testing.T) {
	stored := []models.MenuAddonModel{{ID: 1, MenuID: 5, AddonID: 1}, {ID: 2, MenuID: 5, AddonID: 2}}

	plan, err := PlanAddonLinks(stored, []int{3, 1})
	if err != nil {
		t.Fatalf("PlanAddonLinks: %v", err)
	}
	if !reflect.DeepEqual(plan.Insert, []int{3}) || !reflect.DeepEqual(plan.Delete, []int{2}) {
		t.Fatalf("plan = %+v", plan)
	}

	if _, err := PlanAddonLinks(nil, []int{4, 4}); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict for repeated addon, got %v", err)
	}
}
