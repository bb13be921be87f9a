// Package memstore provides an in-memory CatalogStore with the same
// semantics as the PostgreSQL store: normalized uniqueness, NULL-aware
// variant matching and cascade deletes. It backs the test suites so they
// run without a database server.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/articod/articod/internal/catalogsrv/db/dberror"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/common/apperrors"
	"github.com/articod/articod/internal/common/uuid"
)

type Store struct {
	mu sync.RWMutex

	families        map[uuid.UUID]*models.Family
	variants        map[uuid.UUID]*models.Variant
	exclusions      map[uuid.UUID]map[uuid.UUID]bool
	productTypes    map[uuid.UUID]*models.ProductType
	products        map[uuid.UUID]*models.Product
	characteristics map[uuid.UUID]*models.TechnicalCharacteristic
	entries         map[uuid.UUID]*models.GeneratedEntry
}

// New returns an empty store.
func New() *Store {
	return &Store{
		families:        make(map[uuid.UUID]*models.Family),
		variants:        make(map[uuid.UUID]*models.Variant),
		exclusions:      make(map[uuid.UUID]map[uuid.UUID]bool),
		productTypes:    make(map[uuid.UUID]*models.ProductType),
		products:        make(map[uuid.UUID]*models.Product),
		characteristics: make(map[uuid.UUID]*models.TechnicalCharacteristic),
		entries:         make(map[uuid.UUID]*models.GeneratedEntry),
	}
}

// Close implements CatalogStore; the store holds no connection.
func (s *Store) Close(ctx context.Context) {}

// Family

func (s *Store) CreateFamily(ctx context.Context, family *models.Family) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.families {
		if f.NameNorm == family.NameNorm {
			return dberror.ErrAlreadyExists.Msg("family already exists")
		}
	}
	if family.FamilyID == uuid.Nil {
		family.FamilyID = uuid.New()
	}
	family.CreatedAt = time.Now()
	family.UpdatedAt = family.CreatedAt
	cp := *family
	s.families[family.FamilyID] = &cp
	return nil
}

func (s *Store) GetFamily(ctx context.Context, familyID uuid.UUID) (*models.Family, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.families[familyID]
	if !ok {
		return nil, dberror.ErrNotFound.Msg("family not found")
	}
	cp := *f
	return &cp, nil
}

func (s *Store) ListFamilies(ctx context.Context) ([]*models.Family, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Family
	for _, f := range s.families {
		cp := *f
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameNorm < out[j].NameNorm })
	return out, nil
}

func (s *Store) UpdateFamily(ctx context.Context, family *models.Family) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.families[family.FamilyID]
	if !ok {
		return dberror.ErrNotFound.Msg("family not found")
	}
	for id, f := range s.families {
		if id != family.FamilyID && f.NameNorm == family.NameNorm {
			return dberror.ErrAlreadyExists.Msg("family name already exists")
		}
	}
	existing.Name = family.Name
	existing.NameNorm = family.NameNorm
	existing.Info = family.Info
	existing.UpdatedAt = time.Now()
	return nil
}

func (s *Store) DeleteFamily(ctx context.Context, familyID uuid.UUID) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.families[familyID]; !ok {
		return dberror.ErrNotFound.Msg("family not found")
	}
	delete(s.families, familyID)
	for id, v := range s.variants {
		if v.FamilyID == familyID {
			delete(s.variants, id)
			delete(s.exclusions, id)
		}
	}
	for _, tc := range s.characteristics {
		tc.FamilyIDs = removeID(tc.FamilyIDs, familyID)
	}
	return nil
}

// Variant

func (s *Store) CreateVariant(ctx context.Context, variant *models.Variant) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.families[variant.FamilyID]; !ok {
		return dberror.ErrInvalidFamily
	}
	for _, v := range s.variants {
		if v.FamilyID == variant.FamilyID && v.Level == variant.Level && v.CodeNorm == variant.CodeNorm {
			return dberror.ErrAlreadyExists.Msg("variant code already exists for this family and level")
		}
	}
	if variant.VariantID == uuid.Nil {
		variant.VariantID = uuid.New()
	}
	variant.CreatedAt = time.Now()
	variant.UpdatedAt = variant.CreatedAt
	cp := *variant
	s.variants[variant.VariantID] = &cp
	return nil
}

func (s *Store) GetVariant(ctx context.Context, variantID uuid.UUID) (*models.Variant, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.variants[variantID]
	if !ok {
		return nil, dberror.ErrNotFound.Msg("variant not found")
	}
	cp := *v
	return &cp, nil
}

func (s *Store) ListVariantsByFamily(ctx context.Context, familyID uuid.UUID) ([]*models.Variant, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Variant
	for _, v := range s.variants {
		if v.FamilyID == familyID {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].CodeNorm < out[j].CodeNorm
	})
	return out, nil
}

func (s *Store) UpdateVariant(ctx context.Context, variant *models.Variant) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.variants[variant.VariantID]
	if !ok {
		return dberror.ErrNotFound.Msg("variant not found")
	}
	for id, v := range s.variants {
		if id != variant.VariantID && v.FamilyID == existing.FamilyID && v.Level == existing.Level && v.CodeNorm == variant.CodeNorm {
			return dberror.ErrAlreadyExists.Msg("variant code already exists for this family and level")
		}
	}
	existing.Name = variant.Name
	existing.Code = variant.Code
	existing.CodeNorm = variant.CodeNorm
	existing.UpdatedAt = time.Now()
	return nil
}

func (s *Store) DeleteVariant(ctx context.Context, variantID uuid.UUID) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.variants[variantID]; !ok {
		return dberror.ErrNotFound.Msg("variant not found")
	}
	delete(s.variants, variantID)
	delete(s.exclusions, variantID)
	for _, m := range s.exclusions {
		delete(m, variantID)
	}
	return nil
}

func (s *Store) SetVariantExclusions(ctx context.Context, variantID uuid.UUID, excludedIDs []uuid.UUID) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.variants[variantID]; !ok {
		return dberror.ErrNotFound.Msg("variant not found")
	}
	delete(s.exclusions, variantID)
	for _, m := range s.exclusions {
		delete(m, variantID)
	}
	for _, excludedID := range excludedIDs {
		if excludedID == variantID {
			return dberror.ErrInvalidInput.Msg("variant cannot exclude itself")
		}
		if _, ok := s.variants[excludedID]; !ok {
			return dberror.ErrInvalidVariant.Msg("excluded variant does not exist")
		}
		s.addExclusion(variantID, excludedID)
		s.addExclusion(excludedID, variantID)
	}
	return nil
}

func (s *Store) addExclusion(a, b uuid.UUID) {
	if s.exclusions[a] == nil {
		s.exclusions[a] = make(map[uuid.UUID]bool)
	}
	s.exclusions[a][b] = true
}

func (s *Store) ListVariantExclusions(ctx context.Context, variantID uuid.UUID) ([]uuid.UUID, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []uuid.UUID
	for id := range s.exclusions[variantID] {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out, nil
}

// ProductType

func (s *Store) CreateProductType(ctx context.Context, pt *models.ProductType) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.productTypes {
		if p.NameNorm == pt.NameNorm || p.CodeNorm == pt.CodeNorm {
			return dberror.ErrAlreadyExists.Msg("product type name or code already exists")
		}
	}
	if pt.ProductTypeID == uuid.Nil {
		pt.ProductTypeID = uuid.New()
	}
	pt.CreatedAt = time.Now()
	pt.UpdatedAt = pt.CreatedAt
	cp := *pt
	s.productTypes[pt.ProductTypeID] = &cp
	return nil
}

func (s *Store) GetProductType(ctx context.Context, productTypeID uuid.UUID) (*models.ProductType, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pt, ok := s.productTypes[productTypeID]
	if !ok {
		return nil, dberror.ErrNotFound.Msg("product type not found")
	}
	cp := *pt
	return &cp, nil
}

func (s *Store) ListProductTypes(ctx context.Context) ([]*models.ProductType, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.ProductType
	for _, pt := range s.productTypes {
		cp := *pt
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameNorm < out[j].NameNorm })
	return out, nil
}

func (s *Store) UpdateProductType(ctx context.Context, pt *models.ProductType) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.productTypes[pt.ProductTypeID]
	if !ok {
		return dberror.ErrNotFound.Msg("product type not found")
	}
	for id, p := range s.productTypes {
		if id != pt.ProductTypeID && (p.NameNorm == pt.NameNorm || p.CodeNorm == pt.CodeNorm) {
			return dberror.ErrAlreadyExists.Msg("product type name or code already exists")
		}
	}
	existing.Name = pt.Name
	existing.NameNorm = pt.NameNorm
	existing.Code = pt.Code
	existing.CodeNorm = pt.CodeNorm
	existing.UpdatedAt = time.Now()
	return nil
}

func (s *Store) DeleteProductType(ctx context.Context, productTypeID uuid.UUID) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.productTypes[productTypeID]; !ok {
		return dberror.ErrNotFound.Msg("product type not found")
	}
	for _, p := range s.products {
		if p.ProductTypeID == productTypeID {
			return dberror.ErrInvalidInput.Msg("product type is referenced by products")
		}
	}
	delete(s.productTypes, productTypeID)
	return nil
}

// Product

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.families[product.FamilyID]; !ok {
		return dberror.ErrInvalidFamily
	}
	if _, ok := s.productTypes[product.ProductTypeID]; !ok {
		return dberror.ErrInvalidReference.Msg("product type does not exist")
	}
	for _, p := range s.products {
		if p.NameNorm == product.NameNorm || p.CodeNorm == product.CodeNorm {
			return dberror.ErrAlreadyExists.Msg("product name or code already exists")
		}
	}
	if product.ProductID == uuid.Nil {
		product.ProductID = uuid.New()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	cp := *product
	s.products[product.ProductID] = &cp
	return nil
}

func (s *Store) GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[productID]
	if !ok {
		return nil, dberror.ErrNotFound.Msg("product not found")
	}
	cp := *p
	return &cp, nil
}

func (s *Store) ListProducts(ctx context.Context, familyID uuid.UUID) ([]*models.Product, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Product
	for _, p := range s.products {
		if familyID == uuid.Nil || p.FamilyID == familyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameNorm < out[j].NameNorm })
	return out, nil
}

func (s *Store) UpdateProduct(ctx context.Context, product *models.Product) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.products[product.ProductID]
	if !ok {
		return dberror.ErrNotFound.Msg("product not found")
	}
	for id, p := range s.products {
		if id != product.ProductID && (p.NameNorm == product.NameNorm || p.CodeNorm == product.CodeNorm) {
			return dberror.ErrAlreadyExists.Msg("product name or code already exists")
		}
	}
	existing.Name = product.Name
	existing.NameNorm = product.NameNorm
	existing.Code = product.Code
	existing.CodeNorm = product.CodeNorm
	existing.Info = product.Info
	existing.UpdatedAt = time.Now()
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, productID uuid.UUID) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[productID]; !ok {
		return dberror.ErrNotFound.Msg("product not found")
	}
	delete(s.products, productID)
	for id, e := range s.entries {
		if e.ProductID == productID {
			delete(s.entries, id)
		}
	}
	return nil
}

// TechnicalCharacteristic

func (s *Store) CreateCharacteristic(ctx context.Context, tc *models.TechnicalCharacteristic) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.characteristics {
		if c.NameNorm == tc.NameNorm {
			return dberror.ErrAlreadyExists.Msg("characteristic name already exists")
		}
	}
	for _, familyID := range tc.FamilyIDs {
		if _, ok := s.families[familyID]; !ok {
			return dberror.ErrInvalidFamily
		}
	}
	for _, assoc := range tc.VariantAssociations {
		if _, ok := s.variants[assoc.VariantID]; !ok {
			return dberror.ErrInvalidVariant.Msg("associated variant does not exist")
		}
	}
	if tc.CharacteristicID == uuid.Nil {
		tc.CharacteristicID = uuid.New()
	}
	tc.CreatedAt = time.Now()
	tc.UpdatedAt = tc.CreatedAt
	cp := copyCharacteristic(tc)
	s.characteristics[tc.CharacteristicID] = cp
	return nil
}

func (s *Store) GetCharacteristic(ctx context.Context, characteristicID uuid.UUID) (*models.TechnicalCharacteristic, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tc, ok := s.characteristics[characteristicID]
	if !ok {
		return nil, dberror.ErrNotFound.Msg("characteristic not found")
	}
	return s.hydrated(tc), nil
}

func (s *Store) ListCharacteristics(ctx context.Context) ([]*models.TechnicalCharacteristic, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.TechnicalCharacteristic
	for _, tc := range s.characteristics {
		out = append(out, s.hydrated(tc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameNorm < out[j].NameNorm })
	return out, nil
}

func (s *Store) ListCharacteristicsForFamily(ctx context.Context, familyID uuid.UUID) ([]*models.TechnicalCharacteristic, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.TechnicalCharacteristic
	for _, tc := range s.characteristics {
		for _, id := range tc.FamilyIDs {
			if id == familyID {
				out = append(out, s.hydrated(tc))
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameNorm < out[j].NameNorm })
	return out, nil
}

// hydrated copies tc and resolves each variant association's owning family,
// mirroring the SQL outer join.
func (s *Store) hydrated(tc *models.TechnicalCharacteristic) *models.TechnicalCharacteristic {
	cp := copyCharacteristic(tc)
	for i, assoc := range cp.VariantAssociations {
		if v, ok := s.variants[assoc.VariantID]; ok {
			cp.VariantAssociations[i].FamilyID = v.FamilyID
		} else {
			cp.VariantAssociations[i].FamilyID = uuid.Nil
		}
	}
	return cp
}

func (s *Store) UpdateCharacteristic(ctx context.Context, tc *models.TechnicalCharacteristic) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.characteristics[tc.CharacteristicID]
	if !ok {
		return dberror.ErrNotFound.Msg("characteristic not found")
	}
	for id, c := range s.characteristics {
		if id != tc.CharacteristicID && c.NameNorm == tc.NameNorm {
			return dberror.ErrAlreadyExists.Msg("characteristic name already exists")
		}
	}
	for _, assoc := range tc.VariantAssociations {
		if _, ok := s.variants[assoc.VariantID]; !ok {
			return dberror.ErrInvalidVariant.Msg("associated variant does not exist")
		}
	}
	cp := copyCharacteristic(tc)
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = time.Now()
	s.characteristics[tc.CharacteristicID] = cp
	return nil
}

func (s *Store) DeleteCharacteristic(ctx context.Context, characteristicID uuid.UUID) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.characteristics[characteristicID]; !ok {
		return dberror.ErrNotFound.Msg("characteristic not found")
	}
	delete(s.characteristics, characteristicID)
	for _, e := range s.entries {
		kept := e.Values[:0]
		for _, v := range e.Values {
			if v.CharacteristicID != characteristicID {
				kept = append(kept, v)
			}
		}
		e.Values = kept
	}
	return nil
}

// GeneratedEntry

func (s *Store) CreateGeneratedEntry(ctx context.Context, entry *models.GeneratedEntry) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[entry.ProductID]; !ok {
		return dberror.ErrInvalidReference.Msg("product or variant does not exist")
	}
	for _, variantID := range []uuid.UUID{entry.Variant1ID, entry.Variant2ID} {
		if variantID != uuid.Nil {
			if _, ok := s.variants[variantID]; !ok {
				return dberror.ErrInvalidReference.Msg("product or variant does not exist")
			}
		}
	}
	for _, e := range s.entries {
		if e.GeneratedCode == entry.GeneratedCode {
			return dberror.ErrCodeAlreadyExists
		}
	}
	if entry.EntryID == uuid.Nil {
		entry.EntryID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	for i := range entry.Values {
		entry.Values[i].EntryID = entry.EntryID
	}
	cp := copyEntry(entry)
	s.entries[entry.EntryID] = cp
	return nil
}

func (s *Store) GetGeneratedEntry(ctx context.Context, entryID uuid.UUID) (*models.GeneratedEntry, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[entryID]
	if !ok {
		return nil, dberror.ErrNotFound.Msg("generated entry not found")
	}
	return copyEntry(e), nil
}

func (s *Store) GetGeneratedEntryByCode(ctx context.Context, code string) (*models.GeneratedEntry, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.GeneratedCode == code {
			return copyEntry(e), nil
		}
	}
	return nil, dberror.ErrNotFound.Msg("generated entry not found")
}

func (s *Store) ListGeneratedEntries(ctx context.Context, filter models.GeneratedEntryFilter) ([]*models.GeneratedEntry, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.GeneratedEntry
	for _, e := range s.entries {
		if filter.ProductID != uuid.Nil && e.ProductID != filter.ProductID {
			continue
		}
		if filter.MatchVariants && (e.Variant1ID != filter.Variant1ID || e.Variant2ID != filter.Variant2ID) {
			continue
		}
		if filter.ExcludeEntryID != uuid.Nil && e.EntryID == filter.ExcludeEntryID {
			continue
		}
		out = append(out, copyEntry(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GeneratedCode < out[j].GeneratedCode })
	return out, nil
}

func (s *Store) ListGeneratedCodesByPrefix(ctx context.Context, prefix string) ([]string, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for _, e := range s.entries {
		if strings.HasPrefix(e.GeneratedCode, prefix) {
			out = append(out, e.GeneratedCode)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) ReplaceAttributeValues(ctx context.Context, entryID uuid.UUID, values []models.AttributeValue, updatedBy string) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[entryID]
	if !ok {
		return dberror.ErrNotFound.Msg("generated entry not found")
	}
	e.Values = nil
	for _, v := range values {
		v.EntryID = entryID
		e.Values = append(e.Values, v)
	}
	e.UpdatedBy = updatedBy
	e.UpdatedAt = time.Now()
	return nil
}

func (s *Store) TouchGeneratedEntry(ctx context.Context, entryID uuid.UUID, updatedBy string) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[entryID]
	if !ok {
		return dberror.ErrNotFound.Msg("generated entry not found")
	}
	e.UpdatedBy = updatedBy
	e.UpdatedAt = time.Now()
	return nil
}

func (s *Store) DeleteGeneratedEntry(ctx context.Context, entryID uuid.UUID) apperrors.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[entryID]; !ok {
		return dberror.ErrNotFound.Msg("generated entry not found")
	}
	delete(s.entries, entryID)
	return nil
}

func (s *Store) ListAttributeValuesForCharacteristic(ctx context.Context, characteristicID uuid.UUID, excludeEntryID uuid.UUID) ([]models.AttributeValueRef, apperrors.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.AttributeValueRef
	for _, e := range s.entries {
		if excludeEntryID != uuid.Nil && e.EntryID == excludeEntryID {
			continue
		}
		for _, v := range e.Values {
			if v.CharacteristicID == characteristicID {
				out = append(out, models.AttributeValueRef{
					EntryID:          e.EntryID,
					CharacteristicID: v.CharacteristicID,
					ValueNorm:        v.ValueNorm,
					GeneratedCode:    e.GeneratedCode,
				})
			}
		}
	}
	return out, nil
}

func copyCharacteristic(tc *models.TechnicalCharacteristic) *models.TechnicalCharacteristic {
	cp := *tc
	cp.EnumOptions = append([]string(nil), tc.EnumOptions...)
	cp.FamilyIDs = append([]uuid.UUID(nil), tc.FamilyIDs...)
	cp.VariantAssociations = append([]models.CharacteristicVariant(nil), tc.VariantAssociations...)
	return &cp
}

func copyEntry(e *models.GeneratedEntry) *models.GeneratedEntry {
	cp := *e
	cp.Values = append([]models.AttributeValue(nil), e.Values...)
	return &cp
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
