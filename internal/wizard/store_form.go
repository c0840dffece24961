package wizard

// Store registration wizard: four steps, the last being a pure review page.
const (
	StoreStepBasicInfo = 1
	StoreStepContact   = 2
	StoreStepShipping  = 3
	StoreStepReview    = 4
)

// StoreBasicInfoForm covers the first wizard page. Logo and cover are the
// URLs returned by the media host; the matching delete keys travel through
// the draft unvalidated.
type StoreBasicInfoForm struct {
	Name        string `mapstructure:"name" validate:"required,min=2,max=50"`
	Description string `mapstructure:"description" validate:"required,min=30,max=500"`
	Slug        string `mapstructure:"slug" validate:"required,min=2,max=50,slugfmt"`
	LogoURL     string `mapstructure:"logo" validate:"required,url"`
	CoverURL    string `mapstructure:"cover" validate:"required,url"`
}

// StoreContactForm covers the contact page.
type StoreContactForm struct {
	Email string `mapstructure:"email" validate:"required,email"`
	Phone string `mapstructure:"phone" validate:"required,e164"`
}

// StoreShippingForm covers the policy and shipping-defaults page.
type StoreShippingForm struct {
	ReturnPolicy                 string  `mapstructure:"returnPolicy" validate:"required,min=10"`
	ShippingService              string  `mapstructure:"defaultShippingService" validate:"required"`
	ShippingFeePerItem           float64 `mapstructure:"defaultShippingFeePerItem" validate:"gte=0"`
	ShippingFeeForAdditionalItem float64 `mapstructure:"defaultShippingFeeForAdditionalItem" validate:"gte=0"`
	ShippingFeePerKg             float64 `mapstructure:"defaultShippingFeePerKg" validate:"gte=0"`
	ShippingFeeFixed             float64 `mapstructure:"defaultShippingFeeFixed" validate:"gte=0"`
	DeliveryTimeMin              int     `mapstructure:"defaultDeliveryTimeMin" validate:"required,gte=1"`
	DeliveryTimeMax              int     `mapstructure:"defaultDeliveryTimeMax" validate:"required,gtefield=DeliveryTimeMin"`
}

// StoreForm is the full assembled draft validated at submission time.
type StoreForm struct {
	StoreBasicInfoForm `mapstructure:",squash"`
	StoreContactForm   `mapstructure:",squash"`
	StoreShippingForm  `mapstructure:",squash"`
}

// StoreSteps returns the step descriptors for the store registration wizard.
func StoreSteps() []Step {
	return []Step{
		{Ordinal: StoreStepBasicInfo, Title: "Store details", Form: func() any { return new(StoreBasicInfoForm) }},
		{Ordinal: StoreStepContact, Title: "Contact", Form: func() any { return new(StoreContactForm) }},
		{Ordinal: StoreStepShipping, Title: "Policy & shipping", Form: func() any { return new(StoreShippingForm) }},
		{Ordinal: StoreStepReview, Title: "Review"},
	}
}

// StoreFormFromPayload decodes and fully validates the assembled draft.
// Returns the typed form when the draft is complete and well-formed.
func StoreFormFromPayload(payload Payload) (*StoreForm, []FieldError) {
	form := new(StoreForm)
	if fieldErrs := ValidateForm(payload, form); len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	return form, nil
}

// MissingStoreFields returns exactly the payload field names that are
// absent or fail the full store schema, in schema order without
// duplicates. An empty result means the draft is ready to submit.
func MissingStoreFields(payload Payload) []string {
	fieldErrs := ValidateForm(payload, new(StoreForm))
	if len(fieldErrs) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(fieldErrs))
	fields := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		if _, dup := seen[fieldErr.Field]; dup || fieldErr.Field == "" {
			continue
		}
		seen[fieldErr.Field] = struct{}{}
		fields = append(fields, fieldErr.Field)
	}

	return fields
}
