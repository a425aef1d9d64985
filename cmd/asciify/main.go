package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/glyphs"
	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/shell"
	"github.com/wbrown/img2ascii/shell/tui"
	"github.com/wbrown/img2ascii/storage"
)

// errReported marks a failure the notifier already showed.
var errReported = errors.New("reported")

type globalOptions struct {
	Verbose bool `short:"v" long:"verbose" description:"Log settings and timing to stderr"`
}

type pathArgs struct {
	Input  string `positional-arg-name:"INPUT" required:"yes"`
	Output string `positional-arg-name:"OUTPUT"`
}

type encodeCommand struct {
	Width  int      `short:"w" long:"width" env:"ASCIIFY_WIDTH" default:"100" description:"Characters per line"`
	Fit    bool     `long:"fit" description:"Use the terminal width instead of --width"`
	Filter string   `long:"filter" env:"ASCIIFY_FILTER" default:"catmullrom" description:"Resampling filter: nearest, bilinear, catmullrom, lanczos, box (area with -tags gocv)"`
	Policy string   `long:"policy" env:"ASCIIFY_POLICY" default:"divide32" description:"Quantization: divide32 or fullrange"`
	Args   pathArgs `positional-args:"yes"`
}

type decodeCommand struct {
	Args pathArgs `positional-args:"yes"`
}

type tuiCommand struct{}

type rampCheckCommand struct {
	Font   string `long:"font" description:"TrueType font to measure (default: embedded Go Mono)"`
	Cell   int    `long:"cell" default:"32" description:"Cell size in pixels"`
	Strict bool   `long:"strict" description:"Fail when the ramp is not ordered darkest to lightest"`
}

var opts globalOptions

var logger = log.New(io.Discard, "asciify: ", log.Ltime)

// Replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func (c *encodeCommand) Execute(args []string) error {
	filter, err := imageutil.ParseFilter(c.Filter)
	if err != nil {
		return err
	}
	policy, err := img2ascii.ParsePolicy(c.Policy)
	if err != nil {
		return err
	}

	width := c.Width
	if c.Fit {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || w < 1 {
			logger.Printf("terminal width unavailable (%v), using %d", err, width)
		} else {
			width = w
		}
	}
	logger.Printf("width=%d filter=%s policy=%s", width, filter, policy)

	enc := img2ascii.NewEncoder(
		img2ascii.WithTargetWidth(width),
		img2ascii.WithFilter(filter),
		img2ascii.WithPolicy(policy),
	)
	conv := img2ascii.NewConverter(img2ascii.WithStore(newStdioStore(storage.Default())), img2ascii.WithEncoder(enc))
	return run(shell.ImageToASCII, conv, c.Args)
}

func (c *decodeCommand) Execute(args []string) error {
	conv := img2ascii.NewConverter(img2ascii.WithStore(newStdioStore(storage.Default())))
	return run(shell.ASCIIToImage, conv, c.Args)
}

func (c *tuiCommand) Execute(args []string) error {
	return tui.New(img2ascii.NewConverter()).Run()
}

func (c *rampCheckCommand) Execute(args []string) error {
	f, err := glyphs.LoadFont(c.Font)
	if err != nil {
		return err
	}
	cov := glyphs.RampCoverage(f, img2ascii.DefaultRamp.String(), c.Cell)
	for i, g := range cov {
		v, _ := img2ascii.IntensityForChar(g.Char)
		fmt.Fprintf(stdout, "%2d  %q  intensity=%3d  coverage=%.4f\n", i, g.Char, v, g.Coverage)
	}

	inv := glyphs.Inversions(cov)
	for _, i := range inv {
		fmt.Fprintf(stdout, "warning: %q inks less than %q\n", cov[i].Char, cov[i+1].Char)
	}
	if c.Strict && len(inv) > 0 {
		return fmt.Errorf("ramp is not ordered darkest to lightest (%d inversions)", len(inv))
	}
	return nil
}

// run performs one conversion through the shell runner, reporting the
// result on stderr so stdout stays free for "-" output.
func run(d shell.Direction, conv shell.Converter, args pathArgs) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := shell.NewRunner(conv, &shell.Static{
		Input:    args.Input,
		Output:   args.Output,
		Notifier: shell.NewTextNotifier(stderr),
	})

	start := time.Now()
	res := runner.Run(ctx, d)
	logger.Printf("%s %s -> %s took %v", d, res.Input, res.Output, time.Since(start))
	if res.Err != nil {
		return fmt.Errorf("%w: %w", errReported, res.Err)
	}
	return nil
}

func newParser() *flags.Parser {
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "asciify"
	parser.LongDescription = "Converts images to ASCII art and ASCII art back to grayscale images.\n" +
		"Paths may be local files, s3://bucket/key URIs, or - for stdin/stdout.\n" +
		"A .zst suffix stores the artifact zstd-compressed."

	parser.AddCommand("encode", "Convert an image to ASCII art",
		"Samples INPUT down to --width characters per line and writes the art to OUTPUT (default: INPUT with .txt).",
		&encodeCommand{})
	parser.AddCommand("decode", "Convert ASCII art to an image",
		"Paints INPUT as a grayscale image and writes it to OUTPUT (default: INPUT with .png). "+
			"The extension picks PNG, TIFF or BMP.",
		&decodeCommand{})
	parser.AddCommand("tui", "Run the interactive terminal UI", "", &tuiCommand{})
	parser.AddCommand("rampcheck", "Measure glyph ink coverage of the ramp",
		"Renders every ramp character and reports how much of its cell it inks.",
		&rampCheckCommand{})

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if opts.Verbose {
			logger.SetOutput(stderr)
		}
		return cmd.Execute(args)
	}
	return parser
}

func main() {
	_, err := newParser().Parse()
	if err == nil {
		return
	}

	var ferr *flags.Error
	switch {
	case errors.As(err, &ferr) && ferr.Type == flags.ErrHelp:
		fmt.Fprintln(stdout, ferr.Message)
		return
	case errors.Is(err, errReported):
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
