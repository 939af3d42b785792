// Package service contains the application-level use cases that sit between
// the HTTP handlers and the store layer. Each service focuses on one concern
// of the content pipeline: moderating generated items, serving approved
// content, aggregating catalog statistics, and managing the generation
// prompt template.
//
// Services receive their dependencies (store interfaces, loggers) through
// constructor injection, translate store-level errors into service-level
// sentinel errors, and never depend on concrete infrastructure
// implementations.
package service
