package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	parallel "github.com/gogpu/gg-parallel"
	"github.com/gogpu/gg-parallel/config"
	"github.com/gogpu/gg-parallel/preview"
	"github.com/gogpu/gg-parallel/wayio"
)

// state is shared by all subcommands.
type state struct {
	cfg        config.Config
	configPath string
	verbose    bool
	in         string
	out        string
	previewOut string
	copyTags   bool
}

func newRootCommand() (*cobra.Command, *state) {
	st := &state{cfg: config.Default()}
	root := &cobra.Command{
		Use:           "ggparallel",
		Short:         "Create parallel copies of way chains",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.configPath, "config", "", "preferences file (.toml, .yaml)")
	pf.BoolVarP(&st.verbose, "verbose", "v", false, "log path construction and offsets")
	pf.StringVar(&st.in, "in", "", "input GeoJSON chain")
	pf.StringVar(&st.out, "out", "", "output GeoJSON file (default stdout)")
	pf.StringVar(&st.previewOut, "preview", "", "write a PNG preview to this file")
	pf.BoolVar(&st.copyTags, "copy-tags", true, "copy vertex and way tags to the copy")
	_ = root.MarkPersistentFlagRequired("in")

	root.AddCommand(newOffsetCommand(st), newDragCommand(st))
	return root, st
}

func (st *state) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if st.verbose {
		level = slog.LevelDebug
	}
	parallel.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	if st.configPath != "" {
		cfg, err := config.Load(st.configPath)
		if err != nil {
			return err
		}
		st.cfg = cfg
	}
	if cmd.Flags().Changed("copy-tags") {
		st.cfg.CopyTagsDefault = st.copyTags
	}
	return nil
}

func (st *state) write(cmd *cobra.Command, c *parallel.Copy) error {
	var buf bytes.Buffer
	if err := wayio.WriteCopy(&buf, c); err != nil {
		return err
	}
	buf.WriteByte('\n')
	if st.out == "" {
		_, err := io.Copy(cmd.OutOrStdout(), &buf)
		return err
	}
	return os.WriteFile(st.out, buf.Bytes(), 0o644)
}

func (st *state) render(s preview.Scene) error {
	if st.previewOut == "" {
		return nil
	}
	f, err := os.Create(st.previewOut)
	if err != nil {
		return err
	}
	if err := preview.Render(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newOffsetCommand(st *state) *cobra.Command {
	var (
		ref      int
		distance float64
	)
	cmd := &cobra.Command{
		Use:   "offset",
		Short: "Offset a chain by a fixed distance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			chain, err := wayio.ReadChain(st.in)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("ref") {
				chain.Ref = ref
			}
			ways, err := parallel.NewWays(chain, st.cfg.CopyTagsDefault)
			if err != nil {
				return err
			}
			ways.ChangeOffset(distance)
			if err := st.write(cmd, ways.Copy()); err != nil {
				return err
			}

			seg, _ := chain.Segment(parallel.SegmentRef{Way: chain.Ref, Index: 0})
			return st.render(preview.NewScene(chain, seg, ways.Copy()))
		},
	}
	cmd.Flags().IntVar(&ref, "ref", 0, "index of the reference way")
	cmd.Flags().Float64VarP(&distance, "distance", "d", 0, "signed offset, positive to the left of the reference way")
	_ = cmd.MarkFlagRequired("distance")
	return cmd
}

func newDragCommand(st *state) *cobra.Command {
	var (
		segment  string
		pointers []string
		snap     bool
		mods     config.Modifiers
	)
	cmd := &cobra.Command{
		Use:   "drag",
		Short: "Replay pointer positions through a drag gesture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := parseSegmentRef(segment)
			if err != nil {
				return err
			}
			if len(pointers) == 0 {
				return errors.New("drag: at least one --pointer is required")
			}
			if cmd.Flags().Changed("snap") {
				st.cfg.SnapDefault = snap
			}
			chain, err := wayio.ReadChain(st.in)
			if err != nil {
				return err
			}

			if ref.Way < 0 || ref.Way >= len(chain.Ways) {
				return &parallel.ReferenceError{Way: ref.Way, Index: ref.Index}
			}
			var sel parallel.Selection
			byID := make(map[parallel.WayID]parallel.Way, len(chain.Ways))
			for _, w := range chain.Ways {
				sel.Add(w.ID)
				byID[w.ID] = w
			}
			lookup := func(id parallel.WayID) (parallel.Way, bool) {
				w, ok := byID[id]
				return w, ok
			}

			tag := st.cfg.LanguageTag()
			s := parallel.NewSession(st.cfg)
			if err := s.ArmSelection(&sel, lookup, chain.Ways[ref.Way].ID, ref.Index, mods); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), parallel.HelpText(tag, s.State()))
			refSeg := s.Reference()
			for _, arg := range pointers {
				p, err := parsePoint(arg)
				if err != nil {
					s.Abort()
					return err
				}
				r, err := s.Drag(p, mods)
				if err != nil {
					s.Abort()
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), parallel.DistanceText(tag, r.Distance))
			}

			last := s.Last()
			cs, err := s.Commit()
			if err != nil {
				return err
			}
			if err := st.write(cmd, cs.Copy); err != nil {
				return err
			}
			return st.render(preview.NewScene(chain, refSeg, cs.Copy).WithDrag(last))
		},
	}
	f := cmd.Flags()
	f.StringVar(&segment, "segment", "0:0", "reference segment as WAY:SEGMENT")
	f.StringArrayVar(&pointers, "pointer", nil, "pointer position x,y (repeatable)")
	f.BoolVar(&snap, "snap", true, "snap the offset to whole and half units")
	f.BoolVar(&mods.Alt, "alt", false, "hold Alt during the gesture")
	f.BoolVar(&mods.Shift, "shift", false, "hold Shift during the gesture")
	f.BoolVar(&mods.Ctrl, "ctrl", false, "hold Ctrl during the gesture")
	return cmd
}

func parseSegmentRef(s string) (parallel.SegmentRef, error) {
	w, i, ok := strings.Cut(s, ":")
	if !ok {
		return parallel.SegmentRef{}, fmt.Errorf("segment %q: want WAY:SEGMENT", s)
	}
	way, err := strconv.Atoi(w)
	if err != nil {
		return parallel.SegmentRef{}, fmt.Errorf("segment %q: %w", s, err)
	}
	idx, err := strconv.Atoi(i)
	if err != nil {
		return parallel.SegmentRef{}, fmt.Errorf("segment %q: %w", s, err)
	}
	return parallel.SegmentRef{Way: way, Index: idx}, nil
}

func parsePoint(s string) (parallel.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return parallel.Point{}, fmt.Errorf("pointer %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return parallel.Point{}, fmt.Errorf("pointer %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return parallel.Point{}, fmt.Errorf("pointer %q: %w", s, err)
	}
	return parallel.Pt(x, y), nil
}
