package ds

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// DocumentMap хранит соответствие вид документа -> путь к файлу.
// В БД лежит как JSON в текстовой колонке.
type DocumentMap map[string]string

func (m DocumentMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *DocumentMap) Scan(value interface{}) error {
	if value == nil {
		*m = DocumentMap{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for DocumentMap")
	}
	if len(b) == 0 {
		*m = DocumentMap{}
		return nil
	}
	return json.Unmarshal(b, m)
}

// StringList — JSON список строк в текстовой колонке (картинки галереи)
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for StringList")
	}
	if len(b) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(b, l)
}

// SpecMap — характеристики товара как JSON объект в текстовой колонке
type SpecMap map[string]string

func (m SpecMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *SpecMap) Scan(value interface{}) error {
	if value == nil {
		*m = SpecMap{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for SpecMap")
	}
	if len(b) == 0 {
		*m = SpecMap{}
		return nil
	}
	return json.Unmarshal(b, m)
}
