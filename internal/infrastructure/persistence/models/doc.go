// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
// Structure:
//   - base.go: BaseModel with the auto-increment primary key
//   - partner.go: counterparty model (fornecedor_cliente)
//   - finance.go: obligation model (contas_a_pagar_e_receber)
package models
