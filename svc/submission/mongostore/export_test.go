package mongostore

var Document = document
