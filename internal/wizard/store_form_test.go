package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeStorePayload() Payload {
	return Payload{
		"name":                                "Acme Outfitters",
		"description":                         "Quality outdoor gear and apparel for every season of the year.",
		"slug":                                "acme-outfitters",
		"logo":                                "https://media.example.com/stores/logos/acme.png",
		"cover":                               "https://media.example.com/stores/covers/acme.png",
		"email":                               "owner@acme.example.com",
		"phone":                               "+15550001111",
		"returnPolicy":                        "Returns accepted within 30 days of delivery.",
		"defaultShippingService":              "International Shipping",
		"defaultShippingFeePerItem":           2.5,
		"defaultShippingFeeForAdditionalItem": 1.0,
		"defaultShippingFeePerKg":             0.5,
		"defaultShippingFeeFixed":             0.0,
		"defaultDeliveryTimeMin":              3,
		"defaultDeliveryTimeMax":              14,
	}
}

func TestStoreFormFromPayload_CompleteDraft(t *testing.T) {
	form, fieldErrs := StoreFormFromPayload(completeStorePayload())
	require.Empty(t, fieldErrs)
	require.NotNil(t, form)
	assert.Equal(t, "acme-outfitters", form.Slug)
	assert.Equal(t, "+15550001111", form.Phone)
	assert.Equal(t, 14, form.DeliveryTimeMax)
}

func TestMissingStoreFields_CompleteDraft(t *testing.T) {
	assert.Empty(t, MissingStoreFields(completeStorePayload()))
}

func TestMissingStoreFields_MissingEmail(t *testing.T) {
	payload := completeStorePayload()
	delete(payload, "email")

	assert.Equal(t, []string{"email"}, MissingStoreFields(payload))
}

func TestMissingStoreFields_EmptyDraft(t *testing.T) {
	fields := MissingStoreFields(Payload{})

	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "slug")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "returnPolicy")
	assert.NotContains(t, fields, "defaultShippingFeePerItem", "zero fee is valid")
}

func TestStoreSteps_PerStepValidation(t *testing.T) {
	tests := []struct {
		name      string
		step      int
		payload   Payload
		wantField string
	}{
		{
			name:      "basic info rejects malformed slug",
			step:      StoreStepBasicInfo,
			payload:   mergedPayload(completeStorePayload(), Payload{"slug": "Not A Slug"}),
			wantField: "slug",
		},
		{
			name:      "basic info rejects short description",
			step:      StoreStepBasicInfo,
			payload:   mergedPayload(completeStorePayload(), Payload{"description": "too short"}),
			wantField: "description",
		},
		{
			name:      "contact rejects malformed email",
			step:      StoreStepContact,
			payload:   mergedPayload(completeStorePayload(), Payload{"email": "not-an-email"}),
			wantField: "email",
		},
		{
			name:      "contact rejects local phone format",
			step:      StoreStepContact,
			payload:   mergedPayload(completeStorePayload(), Payload{"phone": "555-0011"}),
			wantField: "phone",
		},
		{
			name:      "shipping rejects max below min",
			step:      StoreStepShipping,
			payload:   mergedPayload(completeStorePayload(), Payload{"defaultDeliveryTimeMax": 1}),
			wantField: "defaultDeliveryTimeMax",
		},
	}

	steps := StoreSteps()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := steps[tt.step-1].Form()
			fieldErrs := ValidateForm(tt.payload, form)
			require.NotEmpty(t, fieldErrs)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
		})
	}
}

func TestStoreSteps_ValidStepSlicePasses(t *testing.T) {
	steps := StoreSteps()
	payload := completeStorePayload()

	for _, step := range steps {
		if step.Form == nil {
			continue
		}
		assert.Empty(t, ValidateForm(payload, step.Form()), "step %d", step.Ordinal)
	}
}

func mergedPayload(base, patch Payload) Payload {
	merged := make(Payload, len(base))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}

	return merged
}
