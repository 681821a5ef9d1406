package geometry

import (
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is a node in a binary bounding volume hierarchy. Leaves are the scene
// objects themselves; a node built from a single object holds it as both children.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// NewBVHNode builds a hierarchy over objects, choosing a random split axis at each
// level from random. The caller's slice is not modified.
func NewBVHNode(objects []Hittable, random *rand.Rand) *BVHNode {
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)
	return buildBVH(objectsCopy, random)
}

// NewBVHFromList builds a hierarchy over the objects of a list
func NewBVHFromList(list *HittableList, random *rand.Rand) *BVHNode {
	return NewBVHNode(list.Objects, random)
}

// buildBVH recursively splits objects at the median of a randomly chosen axis.
// The larger minimum goes left.
func buildBVH(objects []Hittable, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	// Objects are ordered by decreasing minimum bound along the axis
	before := func(a, b Hittable) bool {
		return a.BoundingBox().Axis(axis).Min > b.BoundingBox().Axis(axis).Min
	}

	node := &BVHNode{}
	switch len(objects) {
	case 0:
		node.bbox = core.EmptyAABB
		return node
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		if before(objects[0], objects[1]) {
			node.Left, node.Right = objects[0], objects[1]
		} else {
			node.Left, node.Right = objects[1], objects[0]
		}
	default:
		sort.Slice(objects, func(i, j int) bool {
			return before(objects[i], objects[j])
		})
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid], random)
		node.Right = buildBVH(objects[mid:], random)
	}

	node.bbox = core.MergeAABB(node.Left.BoundingBox(), node.Right.BoundingBox())
	return node
}

// Hit tests the left subtree over the full interval, then the right subtree up to
// the left hit. A right hit wins since it can only be at least as close.
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*material.HitRecord, bool) {
	if n.Left == nil || !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT, random)

	rightMax := rayT.Max
	if hitLeft {
		rightMax = leftHit.T
	}
	rightHit, hitRight := n.Right.Hit(ray, core.NewInterval(rayT.Min, rightMax), random)

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the merged box of both children
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	InternalNodes int
	Leaves        int
	MaxDepth      int
	AvgDepth      float64
}

// Stats walks the hierarchy and reports its shape
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)

	// Calculate average depth after collecting all data
	if stats.Leaves > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.Leaves)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.InternalNodes++
	if n.Left == nil {
		return
	}

	children := []Hittable{n.Left, n.Right}
	if n.Left == n.Right {
		children = children[:1]
	}

	for _, child := range children {
		if inner, ok := child.(*BVHNode); ok {
			inner.collectStats(depth+1, stats)
			continue
		}
		// Leaf object
		stats.Leaves++
		stats.AvgDepth += float64(depth + 1)
		if depth+1 > stats.MaxDepth {
			stats.MaxDepth = depth + 1
		}
	}
}
