// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package compat

import (
	"debug/elf"
	"errors"
)

var (
	// ErrSymbolNotFound reports that no matching symbol is defined.
	ErrSymbolNotFound = errors.New("compat: symbol not found")
	// ErrNoVersioning reports that a resolver cannot tell symbol versions
	// apart. ResolveSymbol falls back to an unversioned lookup on it.
	ErrNoVersioning = errors.New("compat: symbol versioning not supported")
)

// Resolver finds the address of a named symbol.
type Resolver interface {
	Lookup(name string) (uint64, error)
}

// VersionedResolver also resolves a symbol under a version tag.
type VersionedResolver interface {
	Resolver
	LookupVersion(name, version string) (uint64, error)
}

// ResolveSymbol looks name up under version. An empty version, a resolver
// without versioning support, or one reporting [ErrNoVersioning] all fall
// back to the unversioned lookup.
func ResolveSymbol(r Resolver, name, version string) (uint64, error) {
	if version != "" {
		if vr, ok := r.(VersionedResolver); ok {
			addr, err := vr.LookupVersion(name, version)
			if !errors.Is(err, ErrNoVersioning) {
				return addr, err
			}
		}
	}
	return r.Lookup(name)
}

type elfSymbol struct {
	version string
	value   uint64
}

// ELFResolver resolves symbols defined in the dynamic symbol table of an
// ELF image.
type ELFResolver struct {
	symbols   map[string][]elfSymbol
	versioned bool
}

// OpenELF reads the dynamic symbols of the ELF file at path.
func OpenELF(path string) (*ELFResolver, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, wrap(err)
	}
	defer f.Close()
	return NewELFResolver(f)
}

// NewELFResolver reads the dynamic symbols of f.
func NewELFResolver(f *elf.File) (*ELFResolver, error) {
	syms, err := f.DynamicSymbols()
	if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
		return nil, wrap(err)
	}
	r := &ELFResolver{symbols: make(map[string][]elfSymbol)}
	for _, s := range syms {
		if s.Section == elf.SHN_UNDEF || s.Name == "" {
			continue
		}
		if s.Version != "" {
			r.versioned = true
		}
		r.symbols[s.Name] = append(r.symbols[s.Name], elfSymbol{version: s.Version, value: s.Value})
	}
	return r, nil
}

// Versioned reports whether the image carries symbol version tags.
func (r *ELFResolver) Versioned() bool { return r.versioned }

// Lookup returns the first definition of name, whatever its version.
func (r *ELFResolver) Lookup(name string) (uint64, error) {
	defs := r.symbols[name]
	if len(defs) == 0 {
		return 0, ErrSymbolNotFound
	}
	return defs[0].value, nil
}

// LookupVersion returns the definition of name tagged version.
// Returns [ErrNoVersioning] for images without version tags.
func (r *ELFResolver) LookupVersion(name, version string) (uint64, error) {
	if !r.versioned {
		return 0, ErrNoVersioning
	}
	for _, d := range r.symbols[name] {
		if d.version == version {
			return d.value, nil
		}
	}
	return 0, ErrSymbolNotFound
}
