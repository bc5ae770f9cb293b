package game

// Visual is one drawable item held by the stage. Position is the center.
type Visual struct {
	ID       VisualID
	Sprite   Sprite
	Tag      Tag
	X, Y     float64
	Rotation float64
	Alpha    float64
	Frame    int

	// Width and height after scaling
	W, H float64
}

// Bounds returns the visual's axis-aligned box, rotation is ignored
func (v *Visual) Bounds() AABB {
	return AABB{X: v.X - v.W/2, Y: v.Y - v.H/2, W: v.W, H: v.H}
}

// Stage is the in-memory scene shared by the simulation and the frontends
type Stage struct {
	width, height float64

	nextID  VisualID
	visuals map[VisualID]*Visual

	// Draw order of all attached visuals
	order *Bucket

	// Typed tag index
	tags [tagCount]*Bucket
}

// NewStage creates an empty stage of the given size
func NewStage(width, height float64) *Stage {
	s := &Stage{
		width:   width,
		height:  height,
		visuals: make(map[VisualID]*Visual, 256),
		order:   NewBucket(256),
	}
	for i := range s.tags {
		s.tags[i] = NewBucket(64)
	}
	return s
}

// baseFootprint returns the unscaled artwork size for a sprite
func baseFootprint(sprite Sprite) (float64, float64) {
	switch sprite.Kind {
	case SpritePlayer:
		return 100, 76
	case SpriteEnemy:
		_, variant := EnemySpriteParts(sprite.Variant)
		switch variant {
		case EnemySmall:
			return 80, 70
		case EnemyMedium:
			return 96, 84
		case EnemyLarge:
			return 112, 96
		default:
			return 130, 110
		}
	case SpriteMeteorite:
		return 100, 90
	case SpriteLaser:
		return 52, 148
	case SpriteCollectable:
		return 200, 200
	case SpriteExplosion:
		return 192, 192
	case SpriteShield:
		return 144, 136
	default:
		return 0, 0
	}
}

// Footprint returns the scaled size a sprite occupies
func (s *Stage) Footprint(sprite Sprite) (float64, float64) {
	w, h := baseFootprint(sprite)
	scale := sprite.Scale
	if scale == 0 {
		scale = 1
	}
	return w * scale, h * scale
}

// CreateVisual adds a visual centered at pos
func (s *Stage) CreateVisual(sprite Sprite, pos Position, tag Tag) VisualID {
	s.nextID++
	w, h := s.Footprint(sprite)
	v := &Visual{
		ID:       s.nextID,
		Sprite:   sprite,
		Tag:      tag,
		X:        pos.X,
		Y:        pos.Y,
		Rotation: pos.Angle,
		Alpha:    1,
		W:        w,
		H:        h,
	}
	s.visuals[v.ID] = v
	s.order.Add(v.ID)
	if tag > TagNone && tag < tagCount {
		s.tags[tag].Add(v.ID)
	}
	return v.ID
}

// RemoveVisual detaches a visual, removing twice is a no-op
func (s *Stage) RemoveVisual(id VisualID) bool {
	v, ok := s.visuals[id]
	if !ok {
		return false
	}
	delete(s.visuals, id)
	s.order.Remove(id)
	if v.Tag > TagNone && v.Tag < tagCount {
		s.tags[v.Tag].Remove(id)
	}
	return true
}

// Attached reports whether the visual is still on stage
func (s *Stage) Attached(id VisualID) bool {
	_, ok := s.visuals[id]
	return ok
}

// BoundsOf returns the box of an attached visual
func (s *Stage) BoundsOf(id VisualID) (AABB, bool) {
	v, ok := s.visuals[id]
	if !ok {
		return AABB{}, false
	}
	return v.Bounds(), true
}

// FindByTag returns attached visuals with tag in creation order
func (s *Stage) FindByTag(tag Tag) []VisualID {
	if tag <= TagNone || tag >= tagCount {
		return nil
	}
	return s.tags[tag].Snapshot()
}

// CountByTag returns the number of attached visuals with tag
func (s *Stage) CountByTag(tag Tag) int {
	if tag <= TagNone || tag >= tagCount {
		return 0
	}
	return s.tags[tag].Len()
}

// Visual returns the visual for id
func (s *Stage) Visual(id VisualID) (*Visual, bool) {
	v, ok := s.visuals[id]
	return v, ok
}

// Visuals returns all attached visuals in draw order
func (s *Stage) Visuals() []*Visual {
	out := make([]*Visual, 0, s.order.Len())
	for _, id := range s.order.IDs {
		out = append(out, s.visuals[id])
	}
	return out
}

// SetPosition moves a visual's center
func (s *Stage) SetPosition(id VisualID, x, y float64) {
	if v, ok := s.visuals[id]; ok {
		v.X, v.Y = x, y
	}
}

// SetRotation sets a visual's rotation
func (s *Stage) SetRotation(id VisualID, angle float64) {
	if v, ok := s.visuals[id]; ok {
		v.Rotation = angle
	}
}

// SetAlpha sets a visual's opacity
func (s *Stage) SetAlpha(id VisualID, alpha float64) {
	if v, ok := s.visuals[id]; ok {
		v.Alpha = alpha
	}
}

// SetFrame sets the animation frame
func (s *Stage) SetFrame(id VisualID, frame int) {
	if v, ok := s.visuals[id]; ok {
		v.Frame = frame
	}
}

// Size returns the stage dimensions
func (s *Stage) Size() (float64, float64) {
	return s.width, s.height
}

// Clear removes every visual
func (s *Stage) Clear() {
	for id := range s.visuals {
		delete(s.visuals, id)
	}
	s.order.Clear()
	for _, b := range s.tags {
		b.Clear()
	}
}
