// Package doctype defines the closed set of document types the scan
// pipeline can classify, together with the static per-type
// configuration driving classification and confidence gating.
package doctype

// Type identifies a supported document type. Declaration order is
// significant: the classifier breaks score ties in favor of the
// earliest declared type.
type Type int

// Supported document types.
const (
	Aadhaar Type = iota
	PAN
	CreditCard
	DrivingLicense
	VoterID
	Passport
	Invoice
	Receipt
	Insurance
	LabReport
	Generic
)

// Info is the static configuration for one document type.
type Info struct {
	// Name is the human-readable display name
	Name string

	// ID is the stable machine identifier used in config, logs and APIs
	ID string

	// Keywords are lowercase phrases whose presence in recognized text
	// counts toward classification
	Keywords []string

	// Threshold is the recommended confidence threshold for accepting
	// an extraction of this type
	Threshold float64

	// Category flags
	Identity   bool
	Financial  bool
	Healthcare bool
}

// table is indexed by Type. Thresholds reflect sensitivity: identity
// and payment documents gate at 0.9+, loosely structured documents
// lower.
var table = [...]Info{
	Aadhaar: {
		Name: "Aadhaar Card",
		ID:   "aadhaar",
		Keywords: []string{
			"aadhaar", "aadhar", "uidai", "unique identification",
			"government of india", "govt. of india", "enrolment no",
		},
		Threshold: 0.90,
		Identity:  true,
	},
	PAN: {
		Name: "PAN Card",
		ID:   "pan",
		Keywords: []string{
			"permanent account number", "income tax department",
			"income tax", "pan",
		},
		Threshold: 0.90,
		Identity:  true,
	},
	CreditCard: {
		Name: "Payment Card",
		ID:   "credit_card",
		Keywords: []string{
			"valid thru", "valid from", "expiry", "credit card",
			"debit card", "cardholder",
		},
		Threshold: 0.95,
		Financial: true,
	},
	DrivingLicense: {
		Name: "Driving Licence",
		ID:   "driving_license",
		Keywords: []string{
			"driving licence", "driving license", "transport department",
			"motor vehicle", "dl no", "licence to drive",
		},
		Threshold: 0.85,
		Identity:  true,
	},
	VoterID: {
		Name: "Voter ID Card",
		ID:   "voter_id",
		Keywords: []string{
			"election commission", "elector", "voter", "epic no",
			"electoral registration",
		},
		Threshold: 0.85,
		Identity:  true,
	},
	Passport: {
		Name: "Passport",
		ID:   "passport",
		Keywords: []string{
			"passport", "republic of india", "nationality",
			"place of birth", "date of expiry",
		},
		Threshold: 0.85,
		Identity:  true,
	},
	Invoice: {
		Name: "Invoice",
		ID:   "invoice",
		Keywords: []string{
			"invoice", "tax invoice", "bill to", "gstin", "subtotal",
			"amount due", "payment terms",
		},
		Threshold: 0.75,
		Financial: true,
	},
	Receipt: {
		Name: "Receipt",
		ID:   "receipt",
		Keywords: []string{
			"receipt", "cash memo", "total", "thank you", "change due",
			"payment received",
		},
		Threshold: 0.75,
		Financial: true,
	},
	Insurance: {
		Name: "Insurance Document",
		ID:   "insurance",
		Keywords: []string{
			"insurance", "policy", "premium", "sum insured", "insurer",
			"policyholder", "coverage",
		},
		Threshold:  0.80,
		Healthcare: true,
	},
	LabReport: {
		Name: "Lab Report",
		ID:   "lab_report",
		Keywords: []string{
			"laboratory", "lab report", "test report", "specimen",
			"pathology", "reference range", "haemoglobin",
		},
		Threshold:  0.80,
		Healthcare: true,
	},
	Generic: {
		Name:      "Document",
		ID:        "generic",
		Keywords:  nil,
		Threshold: 0.75,
	},
}

// Get returns the static configuration for the type.
func (t Type) Get() Info {
	return table[t]
}

// Name returns the display name.
func (t Type) Name() string { return table[t].Name }

// ID returns the stable machine identifier.
func (t Type) ID() string { return table[t].ID }

// String implements fmt.Stringer.
func (t Type) String() string { return table[t].ID }

// All returns every document type in declaration order.
func All() []Type {
	types := make([]Type, len(table))
	for i := range table {
		types[i] = Type(i)
	}
	return types
}

// Classifiable returns every type the classifier scores, i.e. all types
// except Generic, which is a fallback rather than a detected type.
func Classifiable() []Type {
	types := All()
	return types[:len(types)-1]
}

// FromID resolves a machine identifier back to its type.
func FromID(id string) (Type, bool) {
	for i := range table {
		if table[i].ID == id {
			return Type(i), true
		}
	}
	return Generic, false
}
