package usecase

import (
	"errors"
	"fmt"
)

// エラー種別。handlerがHTTPステータスに変換する。
type ErrorKind string

const (
	KindInvalidRequest     ErrorKind = "invalid_request"
	KindNotFound           ErrorKind = "not_found"
	KindInsufficientStock  ErrorKind = "insufficient_stock"
	KindInvalidOrExpired   ErrorKind = "invalid_or_expired"
	KindAlreadyPaid        ErrorKind = "already_paid"
	KindInvalidStatus      ErrorKind = "invalid_status"
	KindTransactionFailure ErrorKind = "transaction_failure"
	KindUnauthorized       ErrorKind = "unauthorized"
)

// usecaseが返す唯一のエラー型。
// InsufficientStockのときだけ在庫フィールドが埋まる。
type Error struct {
	Kind    ErrorKind
	Message string

	Ingredient string
	Required   int64
	Available  int64
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewError(kind ErrorKind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// 不足した材料名と必要量/在庫量を持たせる
func NewInsufficientStock(ingredient string, required int64, available int64) error {
	return &Error{
		Kind:       KindInsufficientStock,
		Message:    fmt.Sprintf("not enough of ingredient %q: required %d, available %d", ingredient, required, available),
		Ingredient: ingredient,
		Required:   required,
		Available:  available,
	}
}

func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
