package content

// Illustration resolves an illustration key to its ASCII art. The second
// return reports whether the key exists; callers render a blank block for
// unknown keys rather than failing.
func Illustration(key string) (string, bool) {
	art, ok := illustrations[key]
	return art, ok
}

var illustrations = map[string]string{
	"stars-1": `
      ★
`,
	"stars-2": `
    ★     ★
`,
	"stars-3": `
    ★   ★   ★
`,
	"stars-4": `
    ★   ★
    ★   ★
`,
	"balloons-3": `
    o   o   o
    |   |   |
`,
	"balloons-5": `
   o  o  o  o  o
   |  |  |  |  |
`,
	"star-big": `
      ▲
    ★★★★★
     ★★★
    ★   ★
`,
	"abacus": `
   |●●●○○○|
   |●●○○○○|
   |●●●●○○|
`,
	"blocks": `
   ┌─┐┌─┐┌─┐
   │A││B││C│
   └─┘└─┘└─┘
`,
	"keyboard": `
   ┌───────────┐
   │ ⌨  [Enter]│
   └───────────┘
`,
	"owl": `
    ,___,
    (O,O)
    /)_)
     " "
`,
	"cat": `
    /\_/\
   ( o.o )
    > ^ <
`,
	"dog": `
    / \__
   (    @\__
   /         O
  (_____/
`,
	"frog": `
    @..@
   (----)
  ( >__< )
`,
	"sun": `
     \ | /
    -- ☀ --
     / | \
`,
	"meadow": `
   ~ ~ ~ ~ ~
  wwwwwwwwwww
`,
	"sky": `
   ~  ☁   ~
      ~   ☁
`,
	"tomato": `
     ,--.
    ( () )
     '--'
`,
	"banana": `
    _
   //\
   V  \
    \  \_
     \,'.'
`,
	"paint": `
   ▄▄▄ ▄▄▄
   █ █+█ █=?
`,
	"bus": `
   ┌────────┐
   │ ▢ ▢ ▢ ▢│
   └─◯────◯─┘
`,
	"truck": `
   ┌───┬────┐
   │   │ ~~ │
   └◯──┴──◯─┘
`,
	"night": `
    *  .  *
  .   ☾   .
`,
	"snow": `
   *  ❄  *
  ❄   *  ❄
`,
}
