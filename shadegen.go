// Package shadegen generates OKLCH lightness ladders from colour seeds
// declared in CSS.
//
// A seed is a custom property named with the seed marker:
//
//	:root {
//		--generate-color-brand: #ff8800;
//	}
//
// For every seed, Generate emits one variable per lightness stop, holding
// the seed's chroma and hue fixed, plus light-dark() pairs matching the
// lightest stop with the darkest, inward:
//
//	@theme {
//	  --color-brand-98: #ffd673;
//	  ...
//	  --color-brand-98-10: light-dark(var(--color-brand-98), var(--color-brand-10));
//	  ...
//	}
//
// # Library use
//
//	result, err := shadegen.Generate(shadegen.Config{
//		Inputs: []string{"web/styles/seeds.css"},
//	})
//	fmt.Print(result.Document)
//
// # CLI Tool
//
//	go install github.com/yacobolo/shadegen/cmd/shadegen@latest
//	shadegen -i seeds.css -f theme.gen.css
package shadegen
