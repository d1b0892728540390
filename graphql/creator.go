/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"fmt"
	"sync"
)

// builtTypes maps each TypeDefinition to the *typeBuild of its Type.
var builtTypes sync.Map

// typeBuild is the Type built, or being built, for a TypeDefinition. Goroutines that find a build
// in progress wait on done.
type typeBuild struct {
	t    Type
	err  error
	done chan struct{}
}

func (build *typeBuild) wait() (Type, error) {
	<-build.done
	return build.result()
}

// current is like wait but returns a Type still being finalized instead of blocking on it.
func (build *typeBuild) current() (Type, error) {
	select {
	case <-build.done:
		return build.result()
	default:
		return build.t, nil
	}
}

func (build *typeBuild) result() (Type, error) {
	if build.err != nil {
		return nil, build.err
	}
	return build.t, nil
}

func (build *typeBuild) finish(err error) {
	build.err = err
	close(build.done)
}

// typeResolver turns a TypeDefinition referenced by a type being built into a Type.
type typeResolver func(typeDef TypeDefinition) (Type, error)

// typeCreator builds one kind of Type in two steps. load reads the definition and allocates the
// Type; it must not resolve any other definition. finalize then fills in the referenced types.
// Because the Type is published before finalize runs, references back to it (directly or through
// other types) resolve to the same instance instead of recursing forever.
type typeCreator interface {
	definition() TypeDefinition
	load() (Type, error)
	finalize(t Type, resolve typeResolver) error
}

func newCreatorFor(typeDef TypeDefinition) typeCreator {
	switch typeDef := typeDef.(type) {
	case nil:
		return nil
	case ScalarTypeDefinition:
		return &scalarCreator{typeDef: typeDef}
	case ObjectTypeDefinition:
		return &objectCreator{typeDef: typeDef}
	case ListTypeDefinition:
		return &wrappingCreator{typeDef: typeDef, element: typeDef.ElementType()}
	case NonNullTypeDefinition:
		return &wrappingCreator{typeDef: typeDef, element: typeDef.ElementType(), nonNull: true}
	}
	panic(fmt.Sprintf("unsupported TypeDefinition %T", typeDef))
}

// newTypeImpl returns the Type of the creator's definition, building it and every type it
// references on first use.
func newTypeImpl(creator typeCreator) (Type, error) {
	if creator == nil || creator.definition() == nil {
		return nil, nil
	}

	if build, ok := builtTypes.Load(creator.definition()); ok {
		return build.(*typeBuild).wait()
	}

	builder := &typeBuilder{
		finalizing: map[TypeDefinition]Type{},
	}
	return builder.build(creator)
}

// typeBuilder builds a type together with the types it references, all within one goroutine.
type typeBuilder struct {
	// Types being finalized further up the call stack
	finalizing map[TypeDefinition]Type
}

func (builder *typeBuilder) resolve(typeDef TypeDefinition) (Type, error) {
	if wrapper, ok := typeDef.(typeWrapper); ok {
		return wrapper.t, nil
	}

	if t, ok := builder.finalizing[typeDef]; ok {
		return t, nil
	}

	// Two goroutines may build the two ends of a cycle at once; blocking here would deadlock them.
	if build, ok := builtTypes.Load(typeDef); ok {
		return build.(*typeBuild).current()
	}

	creator := newCreatorFor(typeDef)
	if creator == nil {
		return nil, nil
	}
	return builder.build(creator)
}

func (builder *typeBuilder) build(creator typeCreator) (Type, error) {
	typeDef := creator.definition()

	t, err := creator.load()
	if err != nil {
		return nil, err
	}

	build := &typeBuild{
		t:    t,
		done: make(chan struct{}),
	}
	if existing, loaded := builtTypes.LoadOrStore(typeDef, build); loaded {
		// Another goroutine got there first.
		if len(builder.finalizing) > 0 {
			return existing.(*typeBuild).current()
		}
		return existing.(*typeBuild).wait()
	}

	builder.finalizing[typeDef] = t
	defer delete(builder.finalizing, typeDef)

	if err := creator.finalize(t, builder.resolve); err != nil {
		// Forget the failure so that a fixed definition can be built again.
		builtTypes.Delete(typeDef)
		build.finish(err)
		return nil, err
	}

	build.finish(nil)
	return t, nil
}
