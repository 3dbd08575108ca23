package intake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"solarbackend/internal/app/ds"
)

// Типы заявок
const (
	TypeNet         = "net"
	TypeGross       = "gross"
	TypeSimpleSolar = "simple_solar"
)

// Статусы заявки. Начальный всегда pending; администратор может
// выставить любой из набора напрямую, граф переходов не навязывается.
const (
	StatusPending     = "pending"
	StatusUnderReview = "under_review"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusCompleted   = "completed"
)

// Виды документов
const (
	DocElectricityBill = "electricity_bill"
	DocCNICFront       = "cnic_front"
	DocCNICBack        = "cnic_back"
	DocLandOwnership   = "land_ownership"
	DocNOC             = "noc_document"
)

const (
	MinCapacityKW    = 1.0
	MaxCapacityKW    = 50.0
	NetMeteringMinKW = 5.0
	costPerKW        = 80000.0
)

// ValidationError — ошибка пользовательского ввода, исправимая клиентом
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// CreateInput — данные формы создания заявки плюс ссылки на загруженные документы
type CreateInput struct {
	ApplicationType  string
	SystemCapacity   float64
	ConsumptionUnits int
	PropertyType     string
	PropertyAddress  string
	OwnershipType    string
	NOCMessage       string
	Documents        ds.DocumentMap // вид документа -> путь в хранилище
}

// ValidStatus сообщает, входит ли статус в допустимый набор
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// RequiredDocuments возвращает набор обязательных документов для комбинации
// тип заявки / тип владения. Базовые три нужны всегда; land_ownership — для
// собственников при net/gross; simple_solar никогда не требует большего.
// NOC арендатора проверяется отдельно (документ ИЛИ сообщение).
func RequiredDocuments(applicationType, ownershipType string) []string {
	docs := []string{DocElectricityBill, DocCNICFront, DocCNICBack}
	if applicationType != TypeSimpleSolar && ownershipType == "owner" {
		docs = append(docs, DocLandOwnership)
	}
	return docs
}

// Validate проверяет входные данные заявки в фиксированном порядке:
// обязательные поля, диапазон мощности, правило net metering,
// правило NOC для арендаторов, полнота комплекта документов.
func Validate(in CreateInput) error {
	if in.ApplicationType == "" || in.SystemCapacity == 0 || in.PropertyAddress == "" {
		return validationErrorf("All required fields must be filled")
	}

	if in.SystemCapacity < MinCapacityKW || in.SystemCapacity > MaxCapacityKW {
		return validationErrorf("System capacity must be between 1kW and 50kW")
	}

	if in.ApplicationType == TypeNet && in.SystemCapacity < NetMeteringMinKW {
		return validationErrorf("Net metering requires system capacity of 5kW or greater")
	}

	if in.ApplicationType != TypeSimpleSolar && in.OwnershipType == "tenant" {
		_, hasNOC := in.Documents[DocNOC]
		if !hasNOC && strings.TrimSpace(in.NOCMessage) == "" {
			return validationErrorf("Tenants must provide either a NOC document (stamp paper) or a NOC message")
		}
	}

	var missing []string
	for _, doc := range RequiredDocuments(in.ApplicationType, in.OwnershipType) {
		if _, ok := in.Documents[doc]; !ok {
			missing = append(missing, DocumentLabel(doc))
		}
	}
	if len(missing) > 0 {
		return validationErrorf("Please upload required documents: %s", strings.Join(missing, ", "))
	}

	return nil
}

// DocumentLabel превращает вид документа в человекочитаемое имя:
// cnic_front -> Cnic Front
func DocumentLabel(kind string) string {
	words := strings.Split(kind, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// GenerateReference собирает номер заявки вида {PREFIX}-{YYYYMMDD}-{NNNN}.
// Уникальность обеспечивается только вероятностно; при конфликте по уникальному
// индексу хранилище генерирует номер заново.
func GenerateReference(applicationType string, now time.Time) string {
	prefix := "APP"
	switch applicationType {
	case TypeNet:
		prefix = "NET"
	case TypeGross:
		prefix = "GROSS"
	case TypeSimpleSolar:
		prefix = "SOL"
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, now.Format("20060102"), 1000+rand.Intn(9000))
}

// NewApplication строит запись заявки из проверенного ввода.
// Вход должен пройти Validate; статус всегда pending.
func NewApplication(userID uint, in CreateInput, now time.Time) ds.MeteringApplication {
	nocMessage := ""
	if in.OwnershipType == "tenant" {
		nocMessage = in.NOCMessage
	}

	ownership := in.OwnershipType
	if ownership == "" || in.ApplicationType == TypeSimpleSolar {
		ownership = "owner"
	}

	return ds.MeteringApplication{
		UserID:           userID,
		ApplicationType:  in.ApplicationType,
		SystemCapacity:   in.SystemCapacity,
		ConsumptionUnits: in.ConsumptionUnits,
		PropertyType:     in.PropertyType,
		PropertyAddress:  in.PropertyAddress,
		OwnershipType:    ownership,
		ReferenceNumber:  GenerateReference(in.ApplicationType, now),
		Status:           StatusPending,
		SubmittedAt:      now,
		UpdatedAt:        now,
		Documents:        in.Documents,
		NOCMessage:       nocMessage,
		EstimatedCost:    in.SystemCapacity * costPerKW,
	}
}
