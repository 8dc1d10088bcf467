package ecs

import "reflect"

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]any
	// 实体创建顺序，用于让查询结果稳定（渲染顺序与创建顺序一致）
	order []EntityID
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]any),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	em.order = append(em.order, id)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	alive := em.order[:0]
	for _, id := range em.order {
		if _, ok := em.components[id]; ok {
			alive = append(alive, id)
		}
	}
	em.order = alive
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// EntityCount 返回存活实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// AddComponent 为实体添加组件（同类型组件会被替换）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeFor[T]()] = component
	}
}

// GetComponent 获取实体的特定类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeFor[T]()]
	if !found {
		return zero, false
	}
	return comp.(T), true
}

// HasComponent 检查实体是否拥有特定类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	compMap, exists := em.components[id]
	if !exists {
		return false
	}
	_, found := compMap[reflect.TypeFor[T]()]
	return found
}

// RemoveComponent 从实体移除指定类型的组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, reflect.TypeFor[T]())
	}
}

// GetEntitiesWith1 查询拥有组件 A 的所有实体（按创建顺序）
func GetEntitiesWith1[A any](em *EntityManager) []EntityID {
	return em.query(reflect.TypeFor[A]())
}

// GetEntitiesWith2 查询同时拥有组件 A、B 的所有实体（按创建顺序）
func GetEntitiesWith2[A, B any](em *EntityManager) []EntityID {
	return em.query(reflect.TypeFor[A](), reflect.TypeFor[B]())
}

// GetEntitiesWith3 查询同时拥有组件 A、B、C 的所有实体（按创建顺序）
func GetEntitiesWith3[A, B, C any](em *EntityManager) []EntityID {
	return em.query(reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]())
}

// query 按组件类型组合过滤实体
func (em *EntityManager) query(types ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for _, id := range em.order {
		compMap, ok := em.components[id]
		if !ok {
			continue
		}
		hasAll := true
		for _, ct := range types {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	return result
}
