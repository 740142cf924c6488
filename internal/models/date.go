package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Date is a calendar date. On the wire it reads and writes the date-only
// form "2006-01-02" (full RFC3339 timestamps are accepted on input); in
// the database it is stored through datatypes.Date.
type Date datatypes.Date

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format("2006-01-02"))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	*d = Date(t)
	return nil
}

func (d *Date) Scan(v interface{}) error {
	return (*datatypes.Date)(d).Scan(v)
}

func (d Date) Value() (driver.Value, error) {
	return datatypes.Date(d).Value()
}

func (d Date) GormDataType() string {
	return datatypes.Date(d).GormDataType()
}
