// Package orgscrape extracts structured organization records from the
// served HTML of single web pages, for a directory of social enterprises.
// It turns a page into a normalized Record (name, description, contact
// details, sector and activity signals) and classifies the organization
// into one sector using a keyword taxonomy.
//
// This package contains domain types, interfaces and the pure text logic
// shared by implementations, following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, rod/).
package orgscrape
