// Package marketplace contains the Playmaker training-content
// marketplace: publishing subscription-owned exercises, objectives and
// training plans into a shared catalog, cloning them into other
// subscriptions, and maintaining download/rating aggregates.
//
// The module keeps domain/application logic decoupled from
// runtime/platform concerns through ports and adapter composition.
package marketplace
