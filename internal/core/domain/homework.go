package domain

import "errors"

var ErrHomeworkNotFound = errors.New("homework not found")

// NoHomeworkText is shown whenever a date has no entry. The panel UI
// renders it verbatim, so the string is part of the API contract.
const NoHomeworkText = "— Записей пока нет."

// Homework is a per-date assignment entry. Date is an ISO yyyy-mm-dd
// string, the collection's unique key.
type Homework struct {
	Date string `json:"date"`
	Text string `json:"text"`
}
