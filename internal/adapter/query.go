// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Filter is a single "column=operator.value" condition.
type Filter struct {
	Column   string
	Operator string
	Value    string
}

// Eq matches rows where column equals value.
func Eq(column string, value any) Filter {
	return Filter{Column: column, Operator: "eq", Value: fmt.Sprint(value)}
}

// Gt matches rows where column is greater than value.
func Gt(column string, value any) Filter {
	return Filter{Column: column, Operator: "gt", Value: fmt.Sprint(value)}
}

// Order sorts results by Column.
type Order struct {
	Column string
	Desc   bool
}

// Query describes the row set an operation applies to. The zero value
// matches every row of a table.
type Query struct {
	Filters []Filter
	Columns []string
	Orders  []Order
	Limit   int
}

// Where returns a query matching every row that satisfies all filters.
func Where(filters ...Filter) Query {
	return Query{Filters: filters}
}

// And returns a copy of q with filters appended.
func (q Query) And(filters ...Filter) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), filters...)
	return q
}

// OrderBy returns a copy of q sorted by column ascending.
func (q Query) OrderBy(column string) Query {
	q.Orders = append(append([]Order(nil), q.Orders...), Order{Column: column})
	return q
}

// OrderByDesc returns a copy of q sorted by column descending.
func (q Query) OrderByDesc(column string) Query {
	q.Orders = append(append([]Order(nil), q.Orders...), Order{Column: column, Desc: true})
	return q
}

// WithLimit returns a copy of q returning at most n rows.
func (q Query) WithLimit(n int) Query {
	q.Limit = n
	return q
}

// Select returns a copy of q restricted to columns.
func (q Query) Select(columns ...string) Query {
	q.Columns = columns
	return q
}

// Values encodes q as URL query parameters.
func (q Query) Values() url.Values {
	v := url.Values{}

	if len(q.Columns) > 0 {
		v.Set("select", strings.Join(q.Columns, ","))
	}

	for _, f := range q.Filters {
		v.Add(f.Column, f.Operator+"."+f.Value)
	}

	if len(q.Orders) > 0 {
		orders := make([]string, 0, len(q.Orders))
		for _, o := range q.Orders {
			dir := "asc"
			if o.Desc {
				dir = "desc"
			}
			orders = append(orders, o.Column+"."+dir)
		}
		v.Set("order", strings.Join(orders, ","))
	}

	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}

	return v
}
