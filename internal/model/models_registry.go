package model

// Tables lists every record type of the schema in creation order.
var Tables = []any{
	&User{},
	&Property{},
	&Reservation{},
	&PropertyReview{},
}
