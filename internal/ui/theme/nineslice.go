package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// NineSlice is a 9-patch texture with corner sizes in source pixels.
type NineSlice struct {
	Tex    rl.Texture2D
	Left   int32
	Right  int32
	Top    int32
	Bottom int32
}

// DrawNineSlice stretches ns over dest. An unloaded texture draws a flat
// tinted rectangle.
func DrawNineSlice(ns NineSlice, dest rl.Rectangle, tint rl.Color) {
	if ns.Tex.ID == 0 {
		rl.DrawRectangleRec(dest, rl.Fade(tint, 0.35))
		return
	}

	sw := float32(ns.Tex.Width)
	sh := float32(ns.Tex.Height)
	l := float32(ns.Left)
	r := float32(ns.Right)
	t := float32(ns.Top)
	b := float32(ns.Bottom)
	cx := sw - l - r
	cy := sh - t - b

	dx := dest.X
	dy := dest.Y
	dw := dest.Width
	dh := dest.Height
	dl := l
	dr := r
	dt := t
	db := b

	if dl+dr > dw {
		dl = dw / 2
		dr = dw / 2
	}
	if dt+db > dh {
		dt = dh / 2
		db = dh / 2
	}
	dcx := dw - dl - dr
	dcy := dh - dt - db

	type patch struct {
		src  rl.Rectangle
		dest rl.Rectangle
	}

	// Row-major: corners keep their size, edges stretch along one axis.
	patches := [9]patch{
		{rl.NewRectangle(0, 0, l, t), rl.NewRectangle(dx, dy, dl, dt)},
		{rl.NewRectangle(l, 0, cx, t), rl.NewRectangle(dx+dl, dy, dcx, dt)},
		{rl.NewRectangle(sw-r, 0, r, t), rl.NewRectangle(dx+dw-dr, dy, dr, dt)},
		{rl.NewRectangle(0, t, l, cy), rl.NewRectangle(dx, dy+dt, dl, dcy)},
		{rl.NewRectangle(l, t, cx, cy), rl.NewRectangle(dx+dl, dy+dt, dcx, dcy)},
		{rl.NewRectangle(sw-r, t, r, cy), rl.NewRectangle(dx+dw-dr, dy+dt, dr, dcy)},
		{rl.NewRectangle(0, sh-b, l, b), rl.NewRectangle(dx, dy+dh-db, dl, db)},
		{rl.NewRectangle(l, sh-b, cx, b), rl.NewRectangle(dx+dl, dy+dh-db, dcx, db)},
		{rl.NewRectangle(sw-r, sh-b, r, b), rl.NewRectangle(dx+dw-dr, dy+dh-db, dr, db)},
	}

	for _, p := range patches {
		if p.dest.Width <= 0 || p.dest.Height <= 0 {
			continue
		}
		rl.DrawTexturePro(ns.Tex, p.src, p.dest, rl.Vector2{}, 0, tint)
	}
}
