package comtest

import (
	"sync"

	"github.com/ircx/chatframe-go/internal/abi"
	"github.com/ircx/chatframe-go/pkg/com"
)

// maxProps bounds the number of properties per stub interface. Trampolines
// are a finite process-wide resource, so the property vtable is built once
// at this size and shared by every interface.
const maxProps = 48

type vtables struct {
	identity  *abi.Vtable
	props     *abi.Vtable
	container *abi.Vtable
	point     *abi.Vtable
}

var (
	tablesOnce sync.Once
	tables     vtables
)

func stubVtables() vtables {
	tablesOnce.Do(func() {
		qi := abi.NewCallback(stubQueryInterface)
		addRef := abi.NewCallback(stubAddRef)
		release := abi.NewCallback(stubRelease)
		notImpl := abi.NewCallback(stubNotImpl)

		tables.identity = abi.NewVtable(qi, addRef, release)

		entries := []uintptr{qi, addRef, release}
		for i := 0; i < 2*maxProps; i++ {
			entries = append(entries, abi.NewCallback(propertyTrampoline(com.Slot(3+i))))
		}
		tables.props = abi.NewVtable(entries...)

		tables.container = abi.NewVtable(qi, addRef, release,
			notImpl, // EnumConnectionPoints
			abi.NewCallback(stubFindConnectionPoint),
		)
		tables.point = abi.NewVtable(qi, addRef, release,
			abi.NewCallback(stubGetConnectionInterface),
			abi.NewCallback(stubGetConnectionPointContainer),
			abi.NewCallback(stubAdvise),
			abi.NewCallback(stubUnadvise),
			notImpl, // EnumConnections
		)
	})
	return tables
}

func lookup(this uintptr) (binding, bool) {
	b, ok := bindings.Lookup(this)
	if !ok || b.obj == nil {
		return binding{}, false
	}
	return b, true
}

func stubQueryInterface(this, riid, ppv uintptr) uintptr {
	if riid == 0 || ppv == 0 {
		return abi.Status(abi.EPointer)
	}
	b, ok := lookup(this)
	if !ok {
		abi.Store(ppv, uintptr(0))
		return abi.Status(abi.EPointer)
	}
	iid := abi.Load[com.GUID](riid)
	if b.role == rolePoint && iid == com.IIDConnectionPoint {
		b.obj.addRef()
		abi.Store(ppv, this)
		return abi.Status(abi.SOK)
	}
	p, hr := b.obj.queryInterface(iid)
	abi.Store(ppv, p)
	return abi.Status(int32(hr))
}

func stubAddRef(this uintptr) uintptr {
	b, ok := lookup(this)
	if !ok {
		return 0
	}
	return uintptr(b.obj.addRef())
}

func stubRelease(this uintptr) uintptr {
	b, ok := lookup(this)
	if !ok {
		return 0
	}
	return uintptr(b.obj.release())
}

func stubNotImpl(this, out uintptr) uintptr {
	abi.Store(out, uintptr(0))
	return abi.Status(abi.ENotImpl)
}

func propertyTrampoline(slot com.Slot) func(this, arg uintptr) uintptr {
	return func(this, arg uintptr) uintptr {
		b, ok := lookup(this)
		if !ok || b.role != roleProps {
			return abi.Status(abi.EPointer)
		}
		return abi.Status(int32(b.obj.property(b.iface, slot, arg)))
	}
}

func stubFindConnectionPoint(this, riid, ppcp uintptr) uintptr {
	if riid == 0 || ppcp == 0 {
		return abi.Status(abi.EPointer)
	}
	b, ok := lookup(this)
	if !ok || b.role != roleContainer {
		return abi.Status(abi.EPointer)
	}
	p, hr := b.obj.findConnectionPoint(abi.Load[com.GUID](riid))
	abi.Store(ppcp, p)
	return abi.Status(int32(hr))
}

func stubGetConnectionInterface(this, piid uintptr) uintptr {
	b, ok := lookup(this)
	if !ok || piid == 0 {
		return abi.Status(abi.EPointer)
	}
	abi.Store(piid, b.obj.class.Events)
	return abi.Status(abi.SOK)
}

func stubGetConnectionPointContainer(this, ppcpc uintptr) uintptr {
	b, ok := lookup(this)
	if !ok || ppcpc == 0 {
		return abi.Status(abi.EPointer)
	}
	b.obj.addRef()
	abi.Store(ppcpc, b.obj.container)
	return abi.Status(abi.SOK)
}

func stubAdvise(this, unk, cookie uintptr) uintptr {
	b, ok := lookup(this)
	if !ok || cookie == 0 {
		return abi.Status(abi.EPointer)
	}
	c, hr := b.obj.advise(unk)
	abi.Store(cookie, c)
	return abi.Status(int32(hr))
}

func stubUnadvise(this, cookie uintptr) uintptr {
	b, ok := lookup(this)
	if !ok {
		return abi.Status(abi.EPointer)
	}
	return abi.Status(int32(b.obj.unadvise(uint32(cookie))))
}
