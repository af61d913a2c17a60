// This file is part of PhantomKey.
//
// PhantomKey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PhantomKey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PhantomKey.  If not, see <https://www.gnu.org/licenses/>.

package compiler_test

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/phantomkey/phantomkey/compiler"
	"github.com/phantomkey/phantomkey/instructions"
	"github.com/phantomkey/phantomkey/logger"
	"github.com/phantomkey/phantomkey/parser"
	"github.com/phantomkey/phantomkey/script"
)

var _ = Describe("Compiler", func() {
	var log *logger.Logger

	BeforeEach(func() {
		log = logger.NewLogger(16)
	})

	Context("scripts that compile", func() {
		It("should encode a string", func() {
			out, err := compiler.CompileScript("STRING Hello", log)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal([]byte{0x02, 0x0b, 0x00, 0x08, 0x00, 0x0f, 0x00, 0x0f, 0x00, 0x12}))
			Expect(log.Len()).To(Equal(0))
		})

		It("should ignore comments and blank lines", func() {
			out, err := compiler.CompileScript("# comment\n\nENTER\n   \n\t# indented comment\nTAB\n", log)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal([]byte{0x00, 0x28, 0x00, 0x2b}))
		})

		It("should accept CRLF line endings", func() {
			out, err := compiler.CompileScript("ENTER\r\nESCAPE\r\n", log)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal([]byte{0x00, 0x28, 0x00, 0x29}))
		})

		It("should truncate delays to eight bits", func() {
			out, err := compiler.CompileScript("DELAY 300", log)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal([]byte{0x00, 0x2c}))
		})

		It("should wrap mouse movement to eight bits", func() {
			out, err := compiler.CompileScript("MOVE_MOUSE -1 300", log)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal([]byte{0x00, 0xff, 0x2c}))
		})

		It("should concatenate reports in source order", func() {
			text := strings.Join([]string{
				"hold ctrl",
				"string a",
				"release ctrl",
				"click left",
				"scroll -2",
				"arrow down",
			}, "\n")

			out, err := compiler.CompileScript(text, log)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal([]byte{
				0x01, 0x00,
				0x00, 0x04,
				0x01, 0x00,
				0x01, 0x00,
				0x00, 0x00, 0xfe,
				0x00, 0x51,
			}))
		})

		It("should produce nothing for an empty script", func() {
			for _, text := range []string{"", "\n\n", "# nothing to see here\n"} {
				out, err := compiler.CompileScript(text, log)
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(BeEmpty())
			}
		})

		It("should be deterministic", func() {
			text := "STRING The quick brown fox\nDELAY 1000\nMOVE_MOUSE 5 5\nTYPE jumps!\n"
			a, err := compiler.CompileScript(text, log)
			Expect(err).NotTo(HaveOccurred())
			b, err := compiler.CompileScript(text, log)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		})
	})

	Context("untypeable characters", func() {
		It("should substitute a zero report and warn", func() {
			out, err := compiler.CompileScript("STRING a~b", log)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal([]byte{0x00, 0x04, 0x00, 0x00, 0x00, 0x05}))
			Expect(log.Len()).To(Equal(1))

			w := &strings.Builder{}
			log.Write(w)
			Expect(w.String()).To(ContainSubstring("unsupported character '~'"))
		})

		It("should not need a logger", func() {
			out, err := compiler.CompileScript("STRING ü", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal([]byte{0x00, 0x00}))
		})
	})

	Context("scripts that do not compile", func() {
		It("should report an unknown command", func() {
			out, err := compiler.CompileScript("FOO bar", log)
			Expect(out).To(BeNil())

			var unk parser.UnknownCommandError
			Expect(errors.As(err, &unk)).To(BeTrue())
			Expect(unk.Opcode).To(Equal("FOO"))
			Expect(unk.Line).To(Equal(1))
		})

		It("should report a wrong number of arguments", func() {
			_, err := compiler.CompileScript("ENTER\nCLICK\n", log)

			var ar parser.ArityError
			Expect(errors.As(err, &ar)).To(BeTrue())
			Expect(ar.Opcode).To(Equal(instructions.OpClick))
			Expect(ar.Line).To(Equal(2))
			Expect(errors.Is(err, parser.ErrValidation)).To(BeTrue())
		})

		It("should report an invalid argument", func() {
			_, err := compiler.CompileScript("CLICK UP", log)

			var ve parser.ValueError
			Expect(errors.As(err, &ve)).To(BeTrue())
			Expect(ve.Argument).To(Equal("UP"))
		})

		It("should produce no output if any line is invalid", func() {
			out, err := compiler.CompileScript("STRING ok\nENTER\nDELAY later\n", log)
			Expect(err).To(HaveOccurred())
			Expect(out).To(BeNil())
			Expect(err.Error()).To(HavePrefix("compile: line 3: DELAY"))
		})

		It("should not encode anything when parsing fails", func() {
			_, err := compiler.CompileScript("STRING ~\nFOO\n", log)
			Expect(err).To(HaveOccurred())
			Expect(log.Len()).To(Equal(0))
		})
	})

	Context("parsing", func() {
		It("should keep lines and instructions aligned", func() {
			prog, err := compiler.Parse("# header\nSTRING hi\n\nDELAY 5\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Lines).To(HaveLen(2))
			Expect(prog.Instructions).To(HaveLen(2))
			Expect(prog.Lines[0].Num).To(Equal(2))
			Expect(prog.Lines[1].Num).To(Equal(4))
			Expect(prog.Instructions[1]).To(Equal(instructions.Instruction(instructions.Delay{Duration: 5})))
		})

		It("should return parser errors unwrapped", func() {
			_, err := compiler.Parse("BAD")
			_, ok := err.(parser.UnknownCommandError)
			Expect(ok).To(BeTrue())
		})

		It("should compile a parsed program", func() {
			prog, err := compiler.Parse("ARROW LEFT\nARROW RIGHT")
			Expect(err).NotTo(HaveOccurred())
			Expect(compiler.Compile(prog.Instructions, nil)).To(Equal([]byte{0x00, 0x50, 0x00, 0x4f}))
		})

		It("should never see a lex error from a text file", func() {
			// the tokeniser only fails on lines that are empty after
			// trimming, which are always skipped first
			_, err := compiler.Parse(" \t \n\v\f\n \n")
			var le script.LexError
			Expect(errors.As(err, &le)).To(BeFalse())
		})
	})
})
