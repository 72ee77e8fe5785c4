// Package datatable renders a generic record list as a table with single
// column sorting and checkbox row selection.
//
// Rows are compared with ==, so T must be comparable. Two rows holding equal
// values are the same row as far as selection is concerned; callers that need
// to tell them apart should include an identifying field in T.
package datatable
