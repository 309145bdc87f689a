package model

import "time"

// OrderEntry is the full intake record for a property order. Entries carry no
// audit requirement and are permanently deleted, so there is no DeletedAt
// column here.
type OrderEntry struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	OrderNumber    string     `json:"order_number" gorm:"uniqueIndex;size:50;not null"`
	OpenDate       time.Time  `json:"open_date" gorm:"not null"`
	ClosedDate     *time.Time `json:"closed_date"`
	DueDate        time.Time  `json:"due_date" gorm:"not null"`
	ArrivalDate    time.Time  `json:"arrival_date" gorm:"not null"`
	DeliveryDate   *time.Time `json:"delivery_date"`
	ActiveWorkflow string     `json:"active_workflow" gorm:"size:100"`
	AssignedTo     string     `json:"assigned_to" gorm:"size:255"`

	// Address information
	StreetAddress string `json:"street_address" gorm:"type:text;not null"`
	City          string `json:"city" gorm:"size:100;not null"`
	State         string `json:"state" gorm:"size:50;not null"`
	County        string `json:"county" gorm:"size:50;not null"`
	ZipCode       string `json:"zip_code" gorm:"size:20;not null"`

	// Property details
	ParcelID           string  `json:"parcel_id" gorm:"size:100;not null"`
	SubDivision        string  `json:"sub_division" gorm:"size:100"`
	Block              string  `json:"block" gorm:"size:100"`
	Lot                string  `json:"lot" gorm:"size:100"`
	Section            string  `json:"section" gorm:"size:100"`
	LandValue          float64 `json:"land_value" gorm:"type:decimal(10,2);default:0.00"`
	ImprovementValue   float64 `json:"improvement_value" gorm:"type:decimal(10,2);default:0.00"`
	TotalAssessedValue float64 `json:"total_assessed_value" gorm:"type:decimal(10,2);default:0.00"`

	// Order setup
	ProductType         string `json:"product_type" gorm:"size:100;not null"`
	TransactionType     string `json:"transaction_type" gorm:"size:100;not null"`
	WorkflowGroup       string `json:"workflow_group" gorm:"size:100;not null"`
	PropertyType        string `json:"property_type" gorm:"size:100"`
	DataSource          string `json:"data_source" gorm:"size:100;not null"`
	AddInProductService string `json:"add_in_product_service" gorm:"type:text"`

	// Partners
	Abstractor       string `json:"abstractor" gorm:"size:255"`
	BusinessSource   string `json:"business_source" gorm:"size:255"`
	OtherPartner     string `json:"other_partner" gorm:"size:255"`
	OtherSource      string `json:"other_source" gorm:"size:255"`
	RecordingPartner string `json:"recording_partner" gorm:"size:255"`
	TaxOffice        string `json:"tax_office" gorm:"size:255"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
