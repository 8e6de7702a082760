package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field name to its messages
type FieldErrors map[string][]string

// Add appends msg to field unless it is already recorded
func (f FieldErrors) Add(field, msg string) {
	for _, m := range f[field] {
		if m == msg {
			return
		}
	}
	f[field] = append(f[field], msg)
}

// Has reports whether field has at least one error
func (f FieldErrors) Has(field string) bool {
	return len(f[field]) > 0
}

// First returns the first message for field or ""
func (f FieldErrors) First(field string) string {
	if msgs := f[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Any reports whether any field has an error
func (f FieldErrors) Any() bool {
	return len(f) > 0
}

// Merge copies all messages of other into f
func (f FieldErrors) Merge(other FieldErrors) {
	for field, msgs := range other {
		for _, m := range msgs {
			f.Add(field, m)
		}
	}
}

var fieldLabels = map[string]string{
	"categoryName":         "カテゴリ名",
	"name":                 "名前",
	"imageFile":            "画像",
	"description":          "説明",
	"lowestPrice":          "最低価格",
	"highestPrice":         "最高価格",
	"postalCode":           "郵便番号",
	"address":              "住所",
	"phoneNumber":          "電話番号",
	"openingTime":          "開店時間",
	"closingTime":          "閉店時間",
	"regularHoliday":       "定休日",
	"seatingCapacity":      "座席数",
	"categoryId":           "カテゴリ",
	"reservationDate":      "来店日",
	"reservationTime":      "来店時間",
	"numberOfPeople":       "来店人数",
	"restaurantId":         "店舗",
	"score":                "評価",
	"content":              "感想",
	"furigana":             "フリガナ",
	"email":                "メールアドレス",
	"password":             "パスワード",
	"passwordConfirmation": "パスワード（確認用）",
}

// Label returns the display label of a form field
func Label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// Binding messages that the reservation flow shows verbatim
const (
	MsgReservationDateRequired = "来店日を設定してください。"
	MsgReservationTimeRange    = "予約時間は営業時間内に設定してください。"
	MsgNumberOfPeopleMin       = "来店人数は1人以上に設定してください。"
)

// Message renders one validator failure as a user facing message
func Message(fe validator.FieldError) string {
	field := fe.Field()
	switch {
	case field == "reservationDate" && (fe.Tag() == "required" || fe.Tag() == "datetime"):
		return MsgReservationDateRequired
	case field == "reservationTime":
		return MsgReservationTimeRange
	case field == "numberOfPeople":
		return MsgNumberOfPeopleMin
	}

	label := Label(field)
	switch fe.Tag() {
	case "required":
		return label + "を入力してください。"
	case "max":
		if isNumber(fe) {
			return fmt.Sprintf("%sは%s以下に設定してください。", label, fe.Param())
		}
		return fmt.Sprintf("%sは%s文字以内で入力してください。", label, fe.Param())
	case "min":
		if isNumber(fe) {
			return fmt.Sprintf("%sは%s以上に設定してください。", label, fe.Param())
		}
		return fmt.Sprintf("%sは%s文字以上で入力してください。", label, fe.Param())
	case "email":
		return "メールアドレスは正しい形式で入力してください。"
	case "eqfield":
		return "パスワードが一致しません。"
	case "gtefield":
		return fmt.Sprintf("%sは%s以上に設定してください。", label, Label(lowerFirst(fe.Param())))
	case "datetime":
		return label + "の形式が正しくありません。"
	case "jppostal":
		return "郵便番号は7桁の数字で入力してください。"
	}
	return label + "が正しくありません。"
}

// FromError converts a binding error into field errors. Errors that are
// not validator failures, such as a malformed number, are attached to
// fallbackField.
func FromError(err error, fallbackField string) FieldErrors {
	out := FieldErrors{}
	if err == nil {
		return out
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		for _, fe := range ves {
			out.Add(fe.Field(), Message(fe))
		}
		return out
	}
	out.Add(fallbackField, Label(fallbackField)+"が正しくありません。")
	return out
}

func isNumber(fe validator.FieldError) bool {
	switch fe.Kind().String() {
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64", "float32", "float64":
		return true
	}
	return false
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
