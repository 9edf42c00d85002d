package params

import "sort"

// Daycare age bands. Children outside these bands receive no daycare subsidy.
const (
	BandToddler   = "0-2"
	BandPreschool = "3-5"
)

// Bridge crossing identifiers with a fixed per-crossing commute surcharge.
const (
	BridgeStorebaeltCar   = "storebaelt_car"
	BridgeStorebaeltTrain = "storebaelt_train"
	BridgeOresundCar      = "oresund_car"
	BridgeOresundTrain    = "oresund_train"
)

// Table holds every constant the engine reads. A Table is built once and
// shared read-only; nothing in the engine mutates it.
type Table struct {
	Year           int                     `json:"year"`
	Tax            TaxParams               `json:"tax"`
	Commute        CommuteParams           `json:"commute"`
	StudentGrant   StudentGrantParams      `json:"student_grant"`
	Housing        HousingAllowanceParams  `json:"housing_allowance"`
	ChildBenefit   ChildBenefitParams      `json:"child_benefit"`
	Daycare        DaycareParams           `json:"daycare"`
	RentSupport    RentSupportParams       `json:"rent_support"`
	Municipalities map[string]Municipality `json:"municipalities"`
}

type TaxParams struct {
	PersonalAllowance      float64 `json:"personal_allowance"`
	SocialContributionRate float64 `json:"social_contribution_rate"`
	BottomRate             float64 `json:"bottom_rate"`
	TopRate                float64 `json:"top_rate"`
	TopThreshold           float64 `json:"top_threshold"`
	EmploymentRate         float64 `json:"employment_deduction_rate"`
	EmploymentCap          float64 `json:"employment_deduction_cap"`
	JobRate                float64 `json:"job_deduction_rate"`
	JobFloor               float64 `json:"job_deduction_floor"`
	JobCap                 float64 `json:"job_deduction_cap"`
	SingleParentRate       float64 `json:"single_parent_deduction_rate"`
	SingleParentCap        float64 `json:"single_parent_deduction_cap"`
}

// CommuteParams describes the per-km deduction bands for the daily round
// trip. Kilometres up to FreeKm are never deductible; kilometres above
// BandCeilingKm use the second rate.
type CommuteParams struct {
	FreeKm           int                `json:"free_km"`
	BandCeilingKm    int                `json:"band_ceiling_km"`
	Rate1            float64            `json:"rate_1"`
	Rate2            float64            `json:"rate_2"`
	RemoteRate1      float64            `json:"remote_rate_1"`
	RemoteRate2      float64            `json:"remote_rate_2"`
	BridgeSurcharges map[string]float64 `json:"bridge_surcharges"`
}

type StudentGrantParams struct {
	IncomeThreshold float64 `json:"income_threshold"`
	LowIncomeAmount float64 `json:"low_income_amount"`
	BaseAmount      float64 `json:"base_amount"`
}

type HousingAllowanceParams struct {
	LowThreshold  float64 `json:"low_threshold"`
	LowAmount     float64 `json:"low_amount"`
	HighThreshold float64 `json:"high_threshold"`
	HighAmount    float64 `json:"high_amount"`
}

// AgeBand is an inclusive age interval with an annual amount.
type AgeBand struct {
	MinAge int     `json:"min_age"`
	MaxAge int     `json:"max_age"`
	Amount float64 `json:"amount"`
}

type ChildBenefitParams struct {
	Bands             []AgeBand `json:"bands"`
	PhaseOutThreshold float64   `json:"phase_out_threshold"`
	PhaseOutRate      float64   `json:"phase_out_rate"`
}

type DaycareParams struct {
	BaseThreshold         float64 `json:"base_threshold"`
	SingleParentSurcharge float64 `json:"single_parent_surcharge"`
	PerChildIncrement     float64 `json:"per_child_increment"`
	IncomeStep            float64 `json:"income_step"`
	BaseCoPayment         float64 `json:"base_co_payment"`
	CoPaymentPerStep      float64 `json:"co_payment_per_step"`
}

type RentSupportParams struct {
	BaseIncomeLimit        float64 `json:"base_income_limit"`
	ExtraPerChild          float64 `json:"extra_per_child"`
	ExcessRate             float64 `json:"excess_rate"`
	HousingShare           float64 `json:"housing_share"`
	AnnualCap              float64 `json:"annual_cap"`
	NoChildCapShare        float64 `json:"no_child_cap_share"`
	MinMonthly             float64 `json:"min_monthly"`
	MinResidualHousingCost float64 `json:"min_residual_housing_cost"`
}

// Municipality carries the local tax rate and annual daycare fees by band.
type Municipality struct {
	TaxRatePct  float64            `json:"tax_rate_pct"`
	DaycareFees map[string]float64 `json:"daycare_fees"`
}

// TaxRate returns the municipal rate as a fraction.
func (m Municipality) TaxRate() float64 {
	return m.TaxRatePct / 100
}

// Municipality looks up a municipality by name.
func (t *Table) Municipality(name string) (Municipality, bool) {
	m, ok := t.Municipalities[name]
	return m, ok
}

// MunicipalityNames returns the known municipality names in sorted order.
func (t *Table) MunicipalityNames() []string {
	names := make([]string, 0, len(t.Municipalities))
	for name := range t.Municipalities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the reference parameter table.
func Default() *Table {
	return &Table{
		Year: 2025,
		Tax: TaxParams{
			PersonalAllowance:      48000,
			SocialContributionRate: 0.08,
			BottomRate:             0.1215,
			TopRate:                0.15,
			TopThreshold:           568900,
			EmploymentRate:         0.123,
			EmploymentCap:          55600,
			JobRate:                0.045,
			JobFloor:               224500,
			JobCap:                 2900,
			SingleParentRate:       0.115,
			SingleParentCap:        48300,
		},
		Commute: CommuteParams{
			FreeKm:        24,
			BandCeilingKm: 120,
			Rate1:         2.23,
			Rate2:         1.12,
			RemoteRate1:   2.47,
			RemoteRate2:   2.47,
			BridgeSurcharges: map[string]float64{
				BridgeStorebaeltCar:   110,
				BridgeStorebaeltTrain: 15,
				BridgeOresundCar:      50,
				BridgeOresundTrain:    8,
			},
		},
		StudentGrant: StudentGrantParams{
			IncomeThreshold: 350000,
			LowIncomeAmount: 80000,
			BaseAmount:      60000,
		},
		Housing: HousingAllowanceParams{
			LowThreshold:  300000,
			LowAmount:     12000,
			HighThreshold: 400000,
			HighAmount:    6000,
		},
		ChildBenefit: ChildBenefitParams{
			Bands: []AgeBand{
				{MinAge: 0, MaxAge: 2, Amount: 5292 * 4},
				{MinAge: 3, MaxAge: 6, Amount: 4191 * 4},
				{MinAge: 7, MaxAge: 14, Amount: 3297 * 4},
				{MinAge: 15, MaxAge: 17, Amount: 1099 * 12},
			},
			PhaseOutThreshold: 917000,
			PhaseOutRate:      0.02,
		},
		Daycare: DaycareParams{
			BaseThreshold:         208101,
			SingleParentSurcharge: 72822,
			PerChildIncrement:     7000,
			IncomeStep:            4614,
			BaseCoPayment:         0.05,
			CoPaymentPerStep:      0.01,
		},
		RentSupport: RentSupportParams{
			BaseIncomeLimit:        167900,
			ExtraPerChild:          44200,
			ExcessRate:             0.18,
			HousingShare:           0.6,
			AnnualCap:              49716,
			NoChildCapShare:        0.15,
			MinMonthly:             304,
			MinResidualHousingCost: 28300,
		},
		Municipalities: map[string]Municipality{
			"København": {
				TaxRatePct:  23.50,
				DaycareFees: map[string]float64{BandToddler: 47952, BandPreschool: 27804},
			},
			"Frederiksberg": {
				TaxRatePct:  24.57,
				DaycareFees: map[string]float64{BandToddler: 44940, BandPreschool: 24408},
			},
			"Aarhus": {
				TaxRatePct:  24.52,
				DaycareFees: map[string]float64{BandToddler: 46189, BandPreschool: 25399},
			},
		},
	}
}
