package intake

import (
	"regexp"
	"testing"
	"time"

	"solarbackend/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allDocuments() ds.DocumentMap {
	return ds.DocumentMap{
		DocElectricityBill: "documents/bill.pdf",
		DocCNICFront:       "documents/front.jpg",
		DocCNICBack:        "documents/back.jpg",
		DocLandOwnership:   "documents/land.pdf",
		DocNOC:             "documents/noc.pdf",
	}
}

func validNetInput() CreateInput {
	return CreateInput{
		ApplicationType: TypeNet,
		SystemCapacity:  10,
		PropertyType:    "residential",
		PropertyAddress: "House 12, Satellite Town, Rawalpindi",
		OwnershipType:   "owner",
		Documents:       allDocuments(),
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	in := validNetInput()
	in.PropertyAddress = ""

	err := Validate(in)
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
	assert.Equal(t, "All required fields must be filled", err.Error())
}

func TestValidate_CapacityRange(t *testing.T) {
	in := validNetInput()

	in.SystemCapacity = 0.5
	assert.EqualError(t, Validate(in), "System capacity must be between 1kW and 50kW")

	in.SystemCapacity = 51
	assert.EqualError(t, Validate(in), "System capacity must be between 1kW and 50kW")

	in.SystemCapacity = 50
	assert.NoError(t, Validate(in))
}

func TestValidate_NetMeteringMinimum(t *testing.T) {
	in := validNetInput()
	in.SystemCapacity = 4

	err := Validate(in)
	assert.EqualError(t, err, "Net metering requires system capacity of 5kW or greater")

	// Для gross metering порог 5 кВт не действует
	in.ApplicationType = TypeGross
	assert.NoError(t, Validate(in))

	in.ApplicationType = TypeNet
	in.SystemCapacity = 5
	assert.NoError(t, Validate(in))
}

func TestValidate_TenantNOC(t *testing.T) {
	in := validNetInput()
	in.OwnershipType = "tenant"
	in.Documents = ds.DocumentMap{
		DocElectricityBill: "a",
		DocCNICFront:       "b",
		DocCNICBack:        "c",
	}

	// Без документа и без сообщения — отказ
	err := Validate(in)
	assert.EqualError(t, err, "Tenants must provide either a NOC document (stamp paper) or a NOC message")

	// Достаточно сообщения
	in.NOCMessage = "Landlord has verbally approved the installation"
	assert.NoError(t, Validate(in))

	// Пробельное сообщение не считается
	in.NOCMessage = "   "
	assert.Error(t, Validate(in))

	// Достаточно документа
	in.Documents[DocNOC] = "documents/noc.pdf"
	assert.NoError(t, Validate(in))
}

func TestValidate_TenantSkipsLandOwnership(t *testing.T) {
	// Арендатору документы на землю не нужны
	in := validNetInput()
	in.OwnershipType = "tenant"
	in.NOCMessage = "attached on stamp paper"
	in.Documents = ds.DocumentMap{
		DocElectricityBill: "a",
		DocCNICFront:       "b",
		DocCNICBack:        "c",
	}

	assert.NoError(t, Validate(in))
}

func TestValidate_MissingDocuments(t *testing.T) {
	in := validNetInput()
	in.Documents = ds.DocumentMap{
		DocElectricityBill: "a",
	}

	err := Validate(in)
	require.Error(t, err)
	assert.Equal(t, "Please upload required documents: Cnic Front, Cnic Back, Land Ownership", err.Error())
}

func TestValidate_SimpleSolarNeedsOnlyBasics(t *testing.T) {
	in := CreateInput{
		ApplicationType: TypeSimpleSolar,
		SystemCapacity:  3,
		PropertyType:    "residential",
		PropertyAddress: "Bahria Town Phase 4",
		OwnershipType:   "tenant", // даже арендатору NOC не нужен
		Documents: ds.DocumentMap{
			DocElectricityBill: "a",
			DocCNICFront:       "b",
			DocCNICBack:        "c",
		},
	}

	assert.NoError(t, Validate(in))
}

func TestRequiredDocuments(t *testing.T) {
	assert.Equal(t,
		[]string{DocElectricityBill, DocCNICFront, DocCNICBack, DocLandOwnership},
		RequiredDocuments(TypeNet, "owner"))

	assert.Equal(t,
		[]string{DocElectricityBill, DocCNICFront, DocCNICBack},
		RequiredDocuments(TypeNet, "tenant"))

	assert.Equal(t,
		[]string{DocElectricityBill, DocCNICFront, DocCNICBack},
		RequiredDocuments(TypeSimpleSolar, "owner"))
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusUnderReview, StatusApproved, StatusRejected, StatusCompleted} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
}

func TestDocumentLabel(t *testing.T) {
	assert.Equal(t, "Cnic Front", DocumentLabel(DocCNICFront))
	assert.Equal(t, "Electricity Bill", DocumentLabel(DocElectricityBill))
	assert.Equal(t, "Noc Document", DocumentLabel(DocNOC))
}

func TestGenerateReference(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		applicationType string
		prefix          string
	}{
		{TypeNet, "NET"},
		{TypeGross, "GROSS"},
		{TypeSimpleSolar, "SOL"},
		{"unknown", "APP"},
	}

	for _, tt := range tests {
		ref := GenerateReference(tt.applicationType, now)
		assert.Regexp(t, regexp.MustCompile("^"+tt.prefix+`-20240115-[1-9][0-9]{3}$`), ref)
	}
}

func TestNewApplication(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	in := validNetInput()
	in.ConsumptionUnits = 600

	app := NewApplication(42, in, now)

	assert.Equal(t, uint(42), app.UserID)
	assert.Equal(t, TypeNet, app.ApplicationType)
	assert.Equal(t, 10.0, app.SystemCapacity)
	assert.Equal(t, 600, app.ConsumptionUnits)
	assert.Equal(t, StatusPending, app.Status)
	assert.Equal(t, now, app.SubmittedAt)
	assert.Equal(t, now, app.UpdatedAt)
	assert.Equal(t, 800000.0, app.EstimatedCost)
	assert.Regexp(t, `^NET-20240115-\d{4}$`, app.ReferenceNumber)
	// NOC сообщение сохраняется только для арендаторов
	assert.Empty(t, app.NOCMessage)
}

func TestNewApplication_TenantKeepsNOCMessage(t *testing.T) {
	now := time.Now()
	in := validNetInput()
	in.OwnershipType = "tenant"
	in.NOCMessage = "stamp paper attached"

	app := NewApplication(7, in, now)

	assert.Equal(t, "tenant", app.OwnershipType)
	assert.Equal(t, "stamp paper attached", app.NOCMessage)
}

func TestNewApplication_SimpleSolarDefaultsToOwner(t *testing.T) {
	in := validNetInput()
	in.ApplicationType = TypeSimpleSolar
	in.OwnershipType = ""

	app := NewApplication(1, in, time.Now())

	assert.Equal(t, "owner", app.OwnershipType)
	assert.Regexp(t, `^SOL-`, app.ReferenceNumber)
}
