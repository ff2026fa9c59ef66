// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the aggregation pipeline to function:
//
//   - ServiceSource: Produces service records from one backing system
//   - ServiceStore: Persistence for user-submitted records
//   - ReviewStore: Upvote counts for records
//   - SheetReader: Row access to the vetted-organisation spreadsheet
//   - Geocoder: Address text to coordinate resolution
//   - PlacesAPI: Third-party text search and place details
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
